package domain_test

import (
	"errors"
	"strings"
	"testing"

	"nextround/internal/modules/analyzer/domain"
)

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	valid := domain.Manifest{
		Name:    "mock",
		Version: "1.0.0",
		Binary:  "/tmp/mock",
		SHA256:  strings.Repeat("a", 64),
		Enabled: true,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("manifest should be valid: %v", err)
	}
	badHash := valid
	badHash.SHA256 = strings.Repeat("A", 64)
	if err := badHash.Validate(); err == nil {
		t.Fatalf("uppercase sha256 should fail")
	}
	reserved := valid
	reserved.Name = domain.BuiltinName
	if err := reserved.Validate(); err == nil {
		t.Fatalf("builtin name should be reserved")
	}
	noBinary := valid
	noBinary.Binary = ""
	if err := noBinary.Validate(); err == nil {
		t.Fatalf("missing binary should fail")
	}
}

func TestResultValidate(t *testing.T) {
	t.Parallel()
	ok := domain.Result{Score: 88, Tips: []string{"Keep head still"}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("result should be valid: %v", err)
	}
	for _, bad := range []domain.Result{
		{Score: 101, Tips: []string{"x"}},
		{Score: -1, Tips: []string{"x"}},
		{Score: 90},
		{Score: 90, Tips: []string{" "}},
	} {
		if err := bad.Validate(); !errors.Is(err, domain.ErrInvalidResult) {
			t.Fatalf("%+v: expected ErrInvalidResult, got %v", bad, err)
		}
	}
}
