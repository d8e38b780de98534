package in

import (
	"fmt"
	"strings"

	"nextround/internal/modules/swings/dto"
)

// ComparisonMarkdown lays out a comparison as two columns of a markdown
// table followed by the tip breakdown.
func ComparisonMarkdown(c dto.ComparisonOutput) string {
	var b strings.Builder
	b.WriteString("# Swing Comparison\n\n")
	b.WriteString("| | Swing 1 | Swing 2 |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Date | %s | %s |\n", c.First.Date, c.Second.Date)
	fmt.Fprintf(&b, "| Score | %d | %d |\n", c.First.Score, c.Second.Score)
	fmt.Fprintf(&b, "| Improvement | %+d | %+d |\n\n", c.First.Improvement, c.Second.Improvement)
	fmt.Fprintf(&b, "**Score change: %+d**\n\n", c.ScoreDelta)
	writeTips(&b, "Only in swing 1", c.OnlyFirst)
	writeTips(&b, "Only in swing 2", c.OnlySecond)
	writeTips(&b, "In both", c.Shared)
	return b.String()
}

func writeTips(b *strings.Builder, heading string, tips []string) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(tips) == 0 {
		b.WriteString("_none_\n\n")
		return
	}
	for _, tip := range tips {
		fmt.Fprintf(b, "- %s\n", tip)
	}
	b.WriteString("\n")
}
