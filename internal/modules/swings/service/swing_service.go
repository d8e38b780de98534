package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nextround/internal/modules/swings/domain"
	swingsout "nextround/internal/modules/swings/port/out"
	apperrors "nextround/internal/platform/errors"
)

type SwingService struct {
	store swingsout.SwingStore
	index swingsout.SwingIndex
}

func NewSwingService(store swingsout.SwingStore, index swingsout.SwingIndex) *SwingService {
	return &SwingService{store: store, index: index}
}

func (s *SwingService) Reindex(ctx context.Context) error {
	swings, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if err := s.index.Reset(ctx); err != nil {
		return err
	}
	for _, swing := range swings {
		if err := s.index.UpsertSwing(ctx, swing); err != nil {
			return err
		}
	}
	return nil
}

func (s *SwingService) List(ctx context.Context, key domain.SortKey) ([]domain.Swing, error) {
	if key == "" {
		key = domain.SortByDate
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	ids, err := s.index.SortedIDs(ctx, key)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Swing, 0, len(ids))
	for _, id := range ids {
		swing, err := s.store.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("index references swing %d: %w", id, err)
		}
		out = append(out, swing)
	}
	return out, nil
}

func (s *SwingService) Get(ctx context.Context, id int) (domain.Swing, error) {
	return s.store.FindByID(ctx, id)
}

// Compare replays toggles on a fresh selection and compares the pair that
// remains.
func (s *SwingService) Compare(ctx context.Context, toggles []int) (domain.Comparison, error) {
	var selection domain.Selection[int]
	for _, id := range toggles {
		selection.Toggle(id)
	}
	first, second, ok := selection.Pair()
	if !ok {
		return domain.Comparison{}, fmt.Errorf("%w: select exactly two swings to compare, have %d", apperrors.ErrInvalidInput, selection.Len())
	}
	a, err := s.store.FindByID(ctx, first)
	if err != nil {
		return domain.Comparison{}, err
	}
	b, err := s.store.FindByID(ctx, second)
	if err != nil {
		return domain.Comparison{}, err
	}
	return domain.Compare(a, b), nil
}

func (s *SwingService) Stats(ctx context.Context) (domain.Stats, error) {
	swings, err := s.store.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(swings), nil
}

// Add records a new swing. Improvement is measured against the most recent
// swing already in the history.
func (s *SwingService) Add(ctx context.Context, date time.Time, score int, tips []string) (domain.Swing, error) {
	if date.IsZero() {
		return domain.Swing{}, fmt.Errorf("%w: swing date is required", apperrors.ErrInvalidInput)
	}
	cleaned := make([]string, 0, len(tips))
	for _, tip := range tips {
		if tip = strings.TrimSpace(tip); tip != "" {
			cleaned = append(cleaned, tip)
		}
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return domain.Swing{}, err
	}
	improvement := 0
	if stats.Total > 0 {
		improvement = score - stats.LatestScore
	}
	swing, err := s.store.Add(ctx, domain.Swing{Date: date, Score: score, Tips: cleaned, Improvement: improvement})
	if err != nil {
		return domain.Swing{}, err
	}
	if err := s.index.UpsertSwing(ctx, swing); err != nil {
		return domain.Swing{}, err
	}
	return swing, nil
}
