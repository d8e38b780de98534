package usecase

import (
	"context"

	"nextround/internal/modules/profile/domain"
	"nextround/internal/modules/profile/dto"
	profilein "nextround/internal/modules/profile/port/in"
	"nextround/internal/modules/profile/service"
	"nextround/internal/platform/avatar"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetProfile(ctx context.Context) (dto.ProfileOutput, error) {
	profile, err := i.svc.Get(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error) {
	profile, err := i.svc.Update(ctx, input.Name, input.Handicap)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(profile), nil
}

func (i *Interactor) Usage(ctx context.Context) (dto.UsageOutput, error) {
	usage, err := i.svc.Usage(ctx)
	if err != nil {
		return dto.UsageOutput{}, err
	}
	return toUsageOutput(usage), nil
}

func (i *Interactor) RecordUpload(ctx context.Context) (dto.UsageOutput, error) {
	usage, err := i.svc.RecordUpload(ctx)
	if err != nil {
		return dto.UsageOutput{}, err
	}
	return toUsageOutput(usage), nil
}

func (i *Interactor) Upgrade(ctx context.Context) (dto.UpgradeOutput, error) {
	profile, receipt, upgraded, err := i.svc.Upgrade(ctx)
	if err != nil {
		return dto.UpgradeOutput{}, err
	}
	return dto.UpgradeOutput{
		Plan:       string(profile.Plan),
		ReceiptID:  receipt.ID,
		Upgraded:   upgraded,
		PriceLabel: domain.ProPriceLabel,
	}, nil
}

func toProfileOutput(profile domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		Name:         profile.Name,
		Email:        profile.Email,
		Initials:     avatar.Initials(profile.Name),
		Handicap:     profile.Handicap,
		Plan:         string(profile.Plan),
		TotalSwings:  profile.TotalSwings,
		BestScore:    profile.BestScore,
		AverageScore: profile.AverageScore,
		Improvement:  profile.Improvement,
	}
}

func toUsageOutput(usage domain.Usage) dto.UsageOutput {
	return dto.UsageOutput{
		Used:      usage.Used,
		Limit:     usage.Limit,
		Unlimited: usage.Unlimited,
		Remaining: usage.Remaining(),
		Low:       usage.Low(),
	}
}
