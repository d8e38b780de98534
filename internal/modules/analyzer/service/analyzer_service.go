package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"nextround/internal/modules/analyzer/domain"
	"nextround/internal/modules/analyzer/dto"
	analyzerout "nextround/internal/modules/analyzer/port/out"
	apperrors "nextround/internal/platform/errors"
	"nextround/internal/platform/logging"
)

var logger = logging.WithPrefix("analyzer")

type AnalyzerService struct {
	store   analyzerout.ManifestStore
	host    analyzerout.Host
	builtin analyzerout.Engine
}

func NewAnalyzerService(store analyzerout.ManifestStore, host analyzerout.Host, builtin analyzerout.Engine) *AnalyzerService {
	return &AnalyzerService{store: store, host: host, builtin: builtin}
}

func (s *AnalyzerService) List(ctx context.Context) ([]dto.AnalyzerInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnalyzerInfo, 0, len(manifests)+1)
	out = append(out, dto.AnalyzerInfo{Name: domain.BuiltinName, Version: "mock", Enabled: true, Builtin: true})
	for _, m := range manifests {
		out = append(out, dto.AnalyzerInfo{Name: m.Name, Version: m.Version, Binary: m.Binary, Enabled: m.Enabled})
	}
	return out, nil
}

func (s *AnalyzerService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		results = append(results, s.diagnose(ctx, m))
	}
	return results, nil
}

// diagnose stops at the first failing check; later checks stay false.
func (s *AnalyzerService) diagnose(ctx context.Context, m domain.Manifest) dto.DoctorResult {
	result := dto.DoctorResult{Name: m.Name}
	if err := m.Validate(); err != nil {
		result.Error = err.Error()
		return result
	}
	if !fileExists(m.Binary) {
		result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		return result
	}
	result.BinaryReachable = true
	if err := checksumMatches(m.Binary, m.SHA256); err != nil {
		result.Error = "checksum mismatch"
		return result
	}
	result.ChecksumValid = true
	if !m.Enabled || s.host == nil {
		return result
	}
	if err := s.host.CheckLifecycle(ctx, m); err != nil {
		result.Error = err.Error()
		return result
	}
	result.LifecycleOK = true
	return result
}

// Analyze runs the named analyzer. The result is validated before it is
// returned.
func (s *AnalyzerService) Analyze(ctx context.Context, name string, request domain.Request) (domain.Result, error) {
	if err := request.Validate(); err != nil {
		return domain.Result{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if name == "" {
		name = domain.BuiltinName
	}

	var (
		result domain.Result
		err    error
	)
	if name == domain.BuiltinName {
		result, err = s.builtin.Analyze(ctx, request)
	} else {
		var manifest domain.Manifest
		manifest, err = s.getRunnableManifest(ctx, name)
		if err != nil {
			return domain.Result{}, err
		}
		result, err = s.host.Analyze(ctx, manifest, request)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrAnalyzerTimeout, name)
		}
		return domain.Result{}, err
	}
	if err := result.Validate(); err != nil {
		logger.Warn("analyzer returned invalid result", "analyzer", name, "job", request.JobID, "err", err)
		return domain.Result{}, err
	}
	return result, nil
}

func (s *AnalyzerService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(manifests))
	for _, m := range manifests {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if names[m.Name] {
			return nil, fmt.Errorf("duplicate analyzer name: %s", m.Name)
		}
		names[m.Name] = true
	}
	return manifests, nil
}

func (s *AnalyzerService) getRunnableManifest(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	i := slices.IndexFunc(manifests, func(m domain.Manifest) bool { return m.Name == name })
	if i < 0 {
		return domain.Manifest{}, fmt.Errorf("analyzer %q: %w", name, apperrors.ErrNotFound)
	}
	manifest := manifests[i]
	switch {
	case !manifest.Enabled:
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrAnalyzerDisabled, name)
	case s.host == nil:
		return domain.Manifest{}, fmt.Errorf("no plugin host configured for analyzer %q", name)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func checksumMatches(path, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read analyzer binary: %w", err)
	}
	sum := sha256.Sum256(payload)
	if hex.EncodeToString(sum[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
