package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	analyzerout "nextround/internal/modules/analyzer/adapter/out"
)

func TestFileManifestStoreLoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := analyzerout.NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifests, got %d", len(manifests))
	}
}

func TestFileManifestStoreResolvesRelativeBinary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `[
  {
    "name": "mock",
    "version": "1.0.0",
    "binary": "bin/mockanalyzer",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true
  }
]`
	if err := os.WriteFile(filepath.Join(dir, "analyzers.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write analyzers.json: %v", err)
	}
	manifests, err := analyzerout.NewFileManifestStore(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	if want := filepath.Join(dir, "bin", "mockanalyzer"); manifests[0].Binary != want {
		t.Fatalf("binary = %s, want %s", manifests[0].Binary, want)
	}
}

func TestFileManifestStoreRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := `[{"name":"mock","version":"1","binary":"x","sha256":"","enabled":true,"capabilities":["analyze"]}]`
	if err := os.WriteFile(filepath.Join(dir, "analyzers.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write analyzers.json: %v", err)
	}
	if _, err := analyzerout.NewFileManifestStore(dir).Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
