package out

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nextround/internal/modules/swings/domain"
	swingsout "nextround/internal/modules/swings/port/out"
	"nextround/internal/platform/catalog"
	apperrors "nextround/internal/platform/errors"
)

// MemorySwingStore keeps the swing history for the life of the process,
// seeded from the catalog.
type MemorySwingStore struct {
	mu     sync.RWMutex
	swings map[int]domain.Swing
	nextID int
}

func NewMemorySwingStore(seed []catalog.Swing) (swingsout.SwingStore, error) {
	store := &MemorySwingStore{swings: make(map[int]domain.Swing, len(seed)), nextID: 1}
	for _, entry := range seed {
		date, err := catalog.ParseDate(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("seed swing %d: %w", entry.ID, err)
		}
		swing := domain.Swing{
			ID:          entry.ID,
			Date:        date,
			Score:       entry.Score,
			Tips:        append([]string(nil), entry.Tips...),
			Improvement: entry.Improvement,
		}
		if err := swing.Validate(); err != nil {
			return nil, fmt.Errorf("seed swing %d: %w", entry.ID, err)
		}
		store.swings[swing.ID] = swing
		if swing.ID >= store.nextID {
			store.nextID = swing.ID + 1
		}
	}
	return store, nil
}

func (s *MemorySwingStore) List(_ context.Context) ([]domain.Swing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Swing, 0, len(s.swings))
	for _, swing := range s.swings {
		out = append(out, swing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemorySwingStore) FindByID(_ context.Context, id int) (domain.Swing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	swing, ok := s.swings[id]
	if !ok {
		return domain.Swing{}, fmt.Errorf("swing %d: %w", id, apperrors.ErrNotFound)
	}
	return swing, nil
}

func (s *MemorySwingStore) Add(_ context.Context, swing domain.Swing) (domain.Swing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	swing.ID = s.nextID
	if err := swing.Validate(); err != nil {
		return domain.Swing{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.swings[swing.ID] = swing
	s.nextID++
	return swing, nil
}
