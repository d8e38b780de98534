package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"nextround/internal/modules/profile/domain"
	profileout "nextround/internal/modules/profile/port/out"
	apperrors "nextround/internal/platform/errors"
	"nextround/internal/platform/logging"
)

var logger = logging.WithPrefix("profile")

// ProfileService serialises read-modify-write cycles on the single local
// profile.
type ProfileService struct {
	mu        sync.Mutex
	store     profileout.ProfileStore
	checkout  profileout.Checkout
	freeLimit int
}

func NewProfileService(store profileout.ProfileStore, checkout profileout.Checkout, freeLimit int) *ProfileService {
	return &ProfileService{store: store, checkout: checkout, freeLimit: freeLimit}
}

func (s *ProfileService) Get(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

func (s *ProfileService) Update(ctx context.Context, name, handicap string) (domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	handicap = strings.TrimSpace(handicap)
	if _, err := domain.ParseHandicap(handicap); err != nil {
		return domain.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Name = name
	profile.Handicap = handicap
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *ProfileService) Usage(ctx context.Context) (domain.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Usage{}, err
	}
	return s.usageOf(profile), nil
}

func (s *ProfileService) RecordUpload(ctx context.Context) (domain.Usage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Usage{}, err
	}
	profile.UploadsUsed++
	profile.TotalSwings++
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Usage{}, err
	}
	return s.usageOf(profile), nil
}

// Upgrade moves the profile to the pro plan. It is a no-op when the profile
// is already pro.
func (s *ProfileService) Upgrade(ctx context.Context) (domain.Profile, domain.Receipt, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.Load(ctx)
	if err != nil {
		return domain.Profile{}, domain.Receipt{}, false, err
	}
	if profile.Plan == domain.PlanPro {
		return profile, domain.Receipt{}, false, nil
	}
	receipt, err := s.checkout.Charge(ctx, domain.CheckoutRequest{
		Email:       profile.Email,
		Plan:        domain.PlanPro,
		AmountCents: domain.ProPriceCents,
	})
	if err != nil {
		logger.Warn("checkout declined", "email", profile.Email, "err", err)
		return domain.Profile{}, domain.Receipt{}, false, fmt.Errorf("%w: %v", domain.ErrCheckoutFailed, err)
	}
	profile.Plan = domain.PlanPro
	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, domain.Receipt{}, false, err
	}
	logger.Info("plan upgraded", "plan", profile.Plan, "receipt", receipt.ID)
	return profile, receipt, true, nil
}

func (s *ProfileService) usageOf(profile domain.Profile) domain.Usage {
	return domain.Usage{
		Used:      profile.UploadsUsed,
		Limit:     s.freeLimit,
		Unlimited: profile.Plan == domain.PlanPro,
	}
}
