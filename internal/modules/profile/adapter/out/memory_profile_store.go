package out

import (
	"context"
	"fmt"
	"sync"

	"nextround/internal/modules/profile/domain"
	profileout "nextround/internal/modules/profile/port/out"
	"nextround/internal/platform/catalog"
)

type MemoryProfileStore struct {
	mu      sync.RWMutex
	profile domain.Profile
}

func NewMemoryProfileStore(seed catalog.Profile) (profileout.ProfileStore, error) {
	profile := domain.Profile{
		Name:         seed.Name,
		Email:        seed.Email,
		Handicap:     seed.Handicap,
		Plan:         domain.Plan(seed.Plan),
		TotalSwings:  seed.TotalSwings,
		BestScore:    seed.BestScore,
		AverageScore: seed.AverageScore,
		Improvement:  seed.Improvement,
		UploadsUsed:  seed.UploadsUsed,
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("seed profile: %w", err)
	}
	return &MemoryProfileStore{profile: profile}, nil
}

func (s *MemoryProfileStore) Load(_ context.Context) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, nil
}

func (s *MemoryProfileStore) Save(_ context.Context, profile domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	return nil
}
