package in

import (
	"context"

	"nextround/internal/modules/profile/dto"
	profilein "nextround/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) GetProfile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.GetProfile(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, name, handicap string) (dto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, dto.UpdateProfileInput{Name: name, Handicap: handicap})
}

func (h CLIHandler) Usage(ctx context.Context) (dto.UsageOutput, error) {
	return h.usecase.Usage(ctx)
}

func (h CLIHandler) Upgrade(ctx context.Context) (dto.UpgradeOutput, error) {
	return h.usecase.Upgrade(ctx)
}
