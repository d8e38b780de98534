package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	analyzerout "nextround/internal/modules/analyzer/adapter/out"
	"nextround/internal/modules/analyzer/domain"
)

func TestGRPCHostIntegrationMockAnalyzer(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the mock analyzer plugin")
	}
	binPath, checksum := buildMockAnalyzer(t)
	manifest := domain.Manifest{
		Name:    "mock",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  checksum,
		Enabled: true,
	}

	host := analyzerout.NewGRPCHost(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "mockanalyzer" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}

	result, err := host.Analyze(ctx, manifest, domain.Request{JobID: "job-1", MediaName: "swing.mp4", MediaBytes: 1024})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if err := result.Validate(); err != nil {
		t.Fatalf("plugin result invalid: %v", err)
	}
	if result.Score < domain.MinMockScore || result.Score > domain.MaxMockScore {
		t.Fatalf("score %d outside mock range", result.Score)
	}
	if len(result.Tips) != 3 || len(result.Strengths) != 3 {
		t.Fatalf("expected 3 tips and 3 strengths, got %d and %d", len(result.Tips), len(result.Strengths))
	}
}

func buildMockAnalyzer(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "mockanalyzer")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/mockanalyzer")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build mock analyzer: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built plugin: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
