package catalog_test

import (
	"strings"
	"testing"

	"nextround/internal/platform/catalog"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	t.Parallel()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Swings) != 3 {
		t.Fatalf("expected 3 swings, got %d", len(c.Swings))
	}
	if c.Profile.Plan != "free" || c.Profile.UploadsUsed != 3 {
		t.Fatalf("unexpected profile: %+v", c.Profile)
	}
	if len(c.Analysis.Tips) != 3 || len(c.Analysis.Strengths) != 3 {
		t.Fatalf("expected three tips and strengths, got %+v", c.Analysis)
	}
}

func TestParseRejectsDuplicateIDsAndBadDates(t *testing.T) {
	t.Parallel()
	analysis := "analysis:\n  tips: [a]\n  strengths: [b]\n"
	cases := map[string]string{
		"duplicate": "swings:\n  - {id: 1, date: \"2024-01-01\"}\n  - {id: 1, date: \"2024-01-02\"}\n" + analysis,
		"date":      "posts:\n  - {id: 1, date: \"15/01/2024\"}\n" + analysis,
		"analysis":  "swings: []\n",
	}
	for name, raw := range cases {
		if _, err := catalog.Parse([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		} else if name == "duplicate" && !strings.Contains(err.Error(), "duplicate swing id") {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
