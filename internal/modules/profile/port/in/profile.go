package in

import (
	"context"

	"nextround/internal/modules/profile/dto"
)

type Usecase interface {
	GetProfile(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
	Usage(ctx context.Context) (dto.UsageOutput, error)
	RecordUpload(ctx context.Context) (dto.UsageOutput, error)
	Upgrade(ctx context.Context) (dto.UpgradeOutput, error)
}
