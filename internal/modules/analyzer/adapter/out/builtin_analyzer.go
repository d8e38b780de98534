package out

import (
	"context"
	"math/rand/v2"
	"sync"

	"nextround/internal/modules/analyzer/domain"
	analyzerout "nextround/internal/modules/analyzer/port/out"
)

// BuiltinAnalyzer returns canned feedback with a random score in
// [MinMockScore, MaxMockScore].
type BuiltinAnalyzer struct {
	mu        sync.Mutex
	rng       *rand.Rand
	tips      []string
	strengths []string
}

// NewBuiltinAnalyzer uses src for scores; pass a seeded source in tests.
func NewBuiltinAnalyzer(src rand.Source, tips, strengths []string) *BuiltinAnalyzer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &BuiltinAnalyzer{
		rng:       rand.New(src),
		tips:      append([]string(nil), tips...),
		strengths: append([]string(nil), strengths...),
	}
}

var _ analyzerout.Engine = (*BuiltinAnalyzer)(nil)

func (a *BuiltinAnalyzer) Analyze(ctx context.Context, _ domain.Request) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	a.mu.Lock()
	score := domain.MinMockScore + a.rng.IntN(domain.MaxMockScore-domain.MinMockScore+1)
	a.mu.Unlock()
	return domain.Result{
		Score:     score,
		Tips:      append([]string(nil), a.tips...),
		Strengths: append([]string(nil), a.strengths...),
	}, nil
}
