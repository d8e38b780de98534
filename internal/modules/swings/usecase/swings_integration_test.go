package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	swingsout "nextround/internal/modules/swings/adapter/out"
	"nextround/internal/modules/swings/dto"
	"nextround/internal/modules/swings/service"
	"nextround/internal/modules/swings/usecase"
	"nextround/internal/platform/catalog"
	apperrors "nextround/internal/platform/errors"
)

func newInteractor(t *testing.T) *usecase.Interactor {
	t.Helper()
	ctx := context.Background()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	store, err := swingsout.NewMemorySwingStore(cat.Swings)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	index, err := swingsout.NewSQLiteSwingIndex(ctx)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	uc := usecase.NewInteractor(service.NewSwingService(store, index))
	if err := uc.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	return uc.(*usecase.Interactor)
}

func ids(swings []dto.SwingOutput) []int {
	out := make([]int, 0, len(swings))
	for _, s := range swings {
		out = append(out, s.ID)
	}
	return out
}

func TestListSortOrders(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	ctx := context.Background()
	if _, err := uc.AddSwing(ctx, dto.AddSwingInput{Date: "2024-01-20", Score: 82, Tips: []string{"Finish high"}}); err != nil {
		t.Fatalf("add swing: %v", err)
	}

	cases := map[string][]int{
		"":            {4, 1, 2, 3},
		"date":        {4, 1, 2, 3},
		"score":       {1, 4, 2, 3},
		"improvement": {1, 2, 3, 4},
	}
	for sort, want := range cases {
		got, err := uc.ListSwings(ctx, dto.ListInput{Sort: sort})
		if err != nil {
			t.Fatalf("list %q: %v", sort, err)
		}
		if diff := cmp.Diff(want, ids(got)); diff != "" {
			t.Fatalf("sort %q mismatch (-want +got):\n%s", sort, diff)
		}
	}

	if _, err := uc.ListSwings(ctx, dto.ListInput{Sort: "rating"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddSwingMeasuresImprovementAgainstLatest(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	ctx := context.Background()
	added, err := uc.AddSwing(ctx, dto.AddSwingInput{Date: "2024-02-01", Score: 91, Tips: []string{" Keep tempo ", ""}})
	if err != nil {
		t.Fatalf("add swing: %v", err)
	}
	want := dto.SwingOutput{ID: 4, Date: "2024-02-01", Score: 91, Tips: []string{"Keep tempo"}, Improvement: 6}
	if diff := cmp.Diff(want, added); diff != "" {
		t.Fatalf("added swing mismatch (-want +got):\n%s", diff)
	}
	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if diff := cmp.Diff(dto.StatsOutput{LatestScore: 91, MonthImprovement: 6, Total: 4}, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareAppliesTogglesInOrder(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	ctx := context.Background()

	got, err := uc.Compare(ctx, dto.CompareInput{Toggles: []int{1, 2, 3}})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if got.First.ID != 2 || got.Second.ID != 3 {
		t.Fatalf("compared %d and %d, want 2 and 3", got.First.ID, got.Second.ID)
	}
	if got.ScoreDelta != got.Second.Score-got.First.Score {
		t.Fatalf("score delta = %d", got.ScoreDelta)
	}

	if _, err := uc.Compare(ctx, dto.CompareInput{Toggles: []int{1, 1, 2}}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for single pick, got %v", err)
	}
	if _, err := uc.Compare(ctx, dto.CompareInput{Toggles: []int{1, 99}}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatsFromCatalog(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if diff := cmp.Diff(dto.StatsOutput{LatestScore: 85, MonthImprovement: 10, Total: 3}, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}
