package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, f.Close())

	ctype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ctype)

	ok, err := IsImageContent(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUtils_ShouldRejectNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	ok, err := IsImageContent(path)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUtils_DetectContentTypeEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctype, err := DetectContentType(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ctype, "text/plain"))
}

func TestUtils_DetectContentTypeMissingFile(t *testing.T) {
	_, err := DetectContentType(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestMath_MinMaxClamp(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 2, Min(5, 2))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, 0.0, Clamp(-0.2, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.7, 0, 1))
	assert.Equal(t, 0.4, Clamp(0.4, 0, 1))
}

func TestFormat_DecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))
	assert.Equal(t, "raw", DecorateText("raw", MessageType(42)))
	assert.Equal(t, StatusColor+"⚡"+DefaultColor, DecorateText("⚡", StatusMessage))
	assert.Equal(t, ErrorColor+"✘"+DefaultColor, DecorateText("✘", ErrorMessage))
	assert.Equal(t, DefaultColor+"plain"+DefaultColor, DecorateText("plain", DefaultMessage))
}

func TestFormat_FormatTime(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal(t, "2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal(t, "1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestFormat_Plural(t *testing.T) {
	assert.Equal(t, "1 image", Plural(1, "image"))
	assert.Equal(t, "24 images", Plural(24, "image"))
}

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("working", time.Millisecond)
	s.writer = &buf
	s.hideCursor = false
	s.StopMsg = "finished"

	s.Start()
	s.Start() // second start is a no-op
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop() // second stop is a no-op

	out := buf.String()
	assert.Contains(t, out, "working")
	assert.True(t, strings.HasSuffix(out, "finished"))
}
