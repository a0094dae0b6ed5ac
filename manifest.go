package brandgen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestName is the file listing the outputs of a run.
const ManifestName = "manifest.yaml"

// Manifest is the document stored in ManifestName.
type Manifest struct {
	Files []Written `yaml:"files"`
}

// WriteManifest stores the list of written files into dir. Paths are
// recorded relative to dir.
func WriteManifest(dir string, files []Written) (string, error) {
	m := Manifest{Files: make([]Written, len(files))}
	for i, f := range files {
		f.Path = filepath.Base(f.Path)
		m.Files[i] = f
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads the manifest stored in dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}
