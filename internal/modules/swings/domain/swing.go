package domain

import (
	"fmt"
	"strings"
	"time"
)

type Swing struct {
	ID          int
	Date        time.Time
	Score       int
	Tips        []string
	Improvement int
}

func (s Swing) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("swing id must be positive")
	}
	if s.Score < 0 || s.Score > 100 {
		return fmt.Errorf("swing score must be within 0..100")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("swing date is required")
	}
	return nil
}

// TipPreview joins the first n tips for the timeline card.
func (s Swing) TipPreview(n int) string {
	if n > len(s.Tips) {
		n = len(s.Tips)
	}
	return strings.Join(s.Tips[:n], " • ")
}

type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByScore       SortKey = "score"
	SortByImprovement SortKey = "improvement"
)

func (k SortKey) Validate() error {
	switch k {
	case SortByDate, SortByScore, SortByImprovement:
		return nil
	default:
		return fmt.Errorf("unsupported sort key %q", string(k))
	}
}

// Next cycles through the sort keys in menu order.
func (k SortKey) Next() SortKey {
	switch k {
	case SortByDate:
		return SortByScore
	case SortByScore:
		return SortByImprovement
	default:
		return SortByDate
	}
}

type Stats struct {
	LatestScore      int
	MonthImprovement int
	Total            int
}

// ComputeStats summarises a history: the most recent score, the summed
// improvement of swings in the most recent swing's calendar month, and the
// count.
func ComputeStats(swings []Swing) Stats {
	if len(swings) == 0 {
		return Stats{}
	}
	latest := swings[0]
	for _, s := range swings[1:] {
		if s.Date.After(latest.Date) || (s.Date.Equal(latest.Date) && s.ID > latest.ID) {
			latest = s
		}
	}
	stats := Stats{LatestScore: latest.Score, Total: len(swings)}
	for _, s := range swings {
		if s.Date.Year() == latest.Date.Year() && s.Date.Month() == latest.Date.Month() {
			stats.MonthImprovement += s.Improvement
		}
	}
	return stats
}
