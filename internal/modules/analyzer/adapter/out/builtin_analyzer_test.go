package out_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	analyzerout "nextround/internal/modules/analyzer/adapter/out"
	"nextround/internal/modules/analyzer/domain"
)

func TestBuiltinAnalyzerScoresWithinRange(t *testing.T) {
	t.Parallel()
	tips := []string{"Keep your head steady", "Follow through", "Widen stance"}
	strengths := []string{"Tempo", "Contact", "Grip"}
	engine := analyzerout.NewBuiltinAnalyzer(rand.NewPCG(1, 2), tips, strengths)

	for i := 0; i < 200; i++ {
		result, err := engine.Analyze(context.Background(), domain.Request{JobID: "job", MediaName: "swing.mp4"})
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if result.Score < domain.MinMockScore || result.Score > domain.MaxMockScore {
			t.Fatalf("score %d outside mock range", result.Score)
		}
		if diff := cmp.Diff(tips, result.Tips); diff != "" {
			t.Fatalf("tips mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(strengths, result.Strengths); diff != "" {
			t.Fatalf("strengths mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestBuiltinAnalyzerIsDeterministicForASeed(t *testing.T) {
	t.Parallel()
	a := analyzerout.NewBuiltinAnalyzer(rand.NewPCG(7, 7), []string{"x"}, nil)
	b := analyzerout.NewBuiltinAnalyzer(rand.NewPCG(7, 7), []string{"x"}, nil)
	for i := 0; i < 10; i++ {
		ra, _ := a.Analyze(context.Background(), domain.Request{})
		rb, _ := b.Analyze(context.Background(), domain.Request{})
		if ra.Score != rb.Score {
			t.Fatalf("same seed produced %d and %d", ra.Score, rb.Score)
		}
	}
}

func TestBuiltinAnalyzerHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine := analyzerout.NewBuiltinAnalyzer(nil, []string{"x"}, nil)
	if _, err := engine.Analyze(ctx, domain.Request{}); err == nil {
		t.Fatalf("expected cancellation error")
	}
}
