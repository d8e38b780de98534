package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// BuiltinName selects the in-process mock analyzer.
const BuiltinName = "builtin"

const (
	MinMockScore = 80
	MaxMockScore = 99
)

var (
	ErrAnalyzerDisabled = errors.New("analyzer is disabled")
	ErrChecksumMismatch = errors.New("analyzer checksum mismatch")
	ErrAnalyzerTimeout  = errors.New("analyzer timeout")
	ErrInvalidResult    = errors.New("invalid analysis result")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("analyzer name is required")
	}
	if m.Name == BuiltinName {
		return fmt.Errorf("analyzer name %q is reserved", BuiltinName)
	}
	if m.Version == "" {
		return fmt.Errorf("analyzer version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("analyzer binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("analyzer sha256 must be lowercase 64-char hex")
	}
	return nil
}

type Metadata struct {
	Name    string
	Version string
}

type Request struct {
	JobID      string
	MediaName  string
	MediaBytes int64
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return fmt.Errorf("job id is required")
	}
	if strings.TrimSpace(r.MediaName) == "" {
		return fmt.Errorf("media name is required")
	}
	return nil
}

type Result struct {
	Score     int
	Tips      []string
	Strengths []string
}

func (r Result) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: score %d outside 0..100", ErrInvalidResult, r.Score)
	}
	if len(r.Tips) == 0 {
		return fmt.Errorf("%w: no tips", ErrInvalidResult)
	}
	for _, tip := range r.Tips {
		if strings.TrimSpace(tip) == "" {
			return fmt.Errorf("%w: empty tip", ErrInvalidResult)
		}
	}
	return nil
}
