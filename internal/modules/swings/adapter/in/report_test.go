package in

import (
	"strings"
	"testing"

	"nextround/internal/modules/swings/dto"
)

func TestComparisonMarkdown(t *testing.T) {
	t.Parallel()
	got := ComparisonMarkdown(dto.ComparisonOutput{
		First:      dto.SwingOutput{ID: 2, Date: "2024-01-10", Score: 78, Improvement: 3},
		Second:     dto.SwingOutput{ID: 3, Date: "2024-01-15", Score: 85, Improvement: 7},
		ScoreDelta: 7,
		OnlyFirst:  []string{"Keep your head still"},
		Shared:     []string{"Follow through"},
	})
	for _, want := range []string{
		"| Score | 78 | 85 |",
		"| Improvement | +3 | +7 |",
		"**Score change: +7**",
		"- Keep your head still",
		"## Only in swing 2\n\n_none_",
		"- Follow through",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
}
