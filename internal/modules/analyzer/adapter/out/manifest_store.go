package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nextround/internal/modules/analyzer/domain"
	analyzerout "nextround/internal/modules/analyzer/port/out"
)

const manifestFile = "analyzers.json"

// FileManifestStore reads analyzer manifests from <dir>/analyzers.json.
// Relative binary paths resolve against dir.
type FileManifestStore struct {
	dir  string
	path string
}

func NewFileManifestStore(dir string) analyzerout.ManifestStore {
	return &FileManifestStore{dir: dir, path: filepath.Join(dir, manifestFile)}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read analyzer manifests: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode analyzer manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.dir, manifests[i].Binary))
		}
	}
	return manifests, nil
}
