package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line args and returns what was written to stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newApp(&stdout, &stderr).rootCommand()
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_GenerateAndVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	_, stderr, err := run(t, "generate", "--out", dir, "--seed", "3", "--no-font", "--manifest", "logo", "features", "mission")
	require.NoError(t, err)
	assert.Contains(t, stderr, "8 images saved in")
	assert.Contains(t, stderr, "created")

	for _, name := range []string{"lumina_ai_logo.png", "feature-workflow.png", "mission-illustration.png", "manifest.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	stdout, _, err := run(t, "verify", "--dir", dir, "logo", "features", "mission")
	require.NoError(t, err)
	assert.Contains(t, stdout, "8 files verified")

	_, _, err = run(t, "verify", "--dir", dir)
	assert.ErrorContains(t, err, "tech_background.jpg")
}

func TestCLI_GenerateWithConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfgPath := filepath.Join(t.TempDir(), "brandgen.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output_dir = "`+filepath.ToSlash(dir)+`"

[font]
disabled = true

[mission]
format = "webp"
`), 0o644))

	_, _, err := run(t, "--config", cfgPath, "generate", "mission")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "mission-illustration.webp"))
	assert.NoError(t, err)

	stdout, _, err := run(t, "--config", cfgPath, "verify", "mission")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 file verified")
}

func TestCLI_List(t *testing.T) {
	stdout, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "FILE")
	assert.Contains(t, stdout, "tech_background.jpg")
	assert.Contains(t, stdout, "1200x600")
	assert.Contains(t, stdout, "investor-6.png")

	stdout, _, err = run(t, "list", "team")
	require.NoError(t, err)
	assert.Contains(t, stdout, "team-ceo.jpg")
	assert.NotContains(t, stdout, "lumina_ai_logo.png")
}

func TestCLI_Config(t *testing.T) {
	stdout, _, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, `output_dir = "images"`)
	assert.Contains(t, stdout, "[palette]")
}

func TestCLI_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "banner")
	assert.ErrorContains(t, err, "unknown category")

	_, _, err = run(t, "generate", "--quality", "0", "--out", t.TempDir(), "logo")
	assert.ErrorContains(t, err, "quality")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)

	_, _, err = run(t, "config", "extra")
	assert.Error(t, err)
}
