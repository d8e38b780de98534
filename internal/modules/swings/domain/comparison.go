package domain

import "strings"

type Comparison struct {
	First      Swing
	Second     Swing
	ScoreDelta int
	OnlyFirst  []string
	OnlySecond []string
	Shared     []string
}

// Compare lines up two swings. ScoreDelta is second minus first; tips are
// matched case-insensitively.
func Compare(first, second Swing) Comparison {
	c := Comparison{First: first, Second: second, ScoreDelta: second.Score - first.Score}
	inSecond := map[string]struct{}{}
	for _, tip := range second.Tips {
		inSecond[normalizeTip(tip)] = struct{}{}
	}
	inFirst := map[string]struct{}{}
	for _, tip := range first.Tips {
		key := normalizeTip(tip)
		inFirst[key] = struct{}{}
		if _, ok := inSecond[key]; ok {
			c.Shared = append(c.Shared, tip)
		} else {
			c.OnlyFirst = append(c.OnlyFirst, tip)
		}
	}
	for _, tip := range second.Tips {
		if _, ok := inFirst[normalizeTip(tip)]; !ok {
			c.OnlySecond = append(c.OnlySecond, tip)
		}
	}
	return c
}

func normalizeTip(tip string) string {
	return strings.ToLower(strings.TrimSpace(tip))
}
