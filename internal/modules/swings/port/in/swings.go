package in

import (
	"context"

	"nextround/internal/modules/swings/dto"
)

type Usecase interface {
	ListSwings(ctx context.Context, input dto.ListInput) ([]dto.SwingOutput, error)
	GetSwing(ctx context.Context, id int) (dto.SwingOutput, error)
	Compare(ctx context.Context, input dto.CompareInput) (dto.ComparisonOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
	AddSwing(ctx context.Context, input dto.AddSwingInput) (dto.SwingOutput, error)
	Reindex(ctx context.Context) error
}
