package brandgen

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Parse(t *testing.T) {
	testCases := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{".PNG", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"bmp", BMP},
		{" webp ", WebP},
	}
	for _, tc := range testCases {
		f, err := ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f, tc.in)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)

	assert.Equal(t, "jpg", JPEG.Ext())
	assert.Equal(t, "", Format(17).Ext())
}

func TestEncode_Decodes(t *testing.T) {
	img := newTestGenerator().Mission().Image
	for _, f := range []Format{PNG, JPEG, BMP, WebP} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, f, 80))

			cfg, name, err := image.DecodeConfig(&buf)
			require.NoError(t, err)
			assert.Equal(t, f.decoderName(), name)
			assert.Equal(t, missionWidth, cfg.Width)
			assert.Equal(t, missionHeight, cfg.Height)
		})
	}

	assert.Error(t, Encode(&bytes.Buffer{}, img, Format(17), 80))
}

func TestEncode_QualityFallback(t *testing.T) {
	img := mustAsset(t)(newTestGenerator().TeamImage(RoleCEO)).Image

	var def, zero bytes.Buffer
	require.NoError(t, Encode(&def, img, JPEG, DefaultQuality))
	require.NoError(t, Encode(&zero, img, JPEG, 0))
	assert.Equal(t, def.Bytes(), zero.Bytes())
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	a := newTestGenerator().Logo()

	path, err := Save(dir, a, DefaultQuality)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lumina_ai_logo.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, name, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", name)
	assert.Equal(t, logoSize, cfg.Width)
}

func TestSave_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Save(filepath.Join(blocker, "images"), newTestGenerator().Logo(), DefaultQuality)
	assert.Error(t, err)
}
