package in

import (
	"context"

	"nextround/internal/modules/feed/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) (dto.PageOutput, error)
	ToggleLike(ctx context.Context, postID int) (dto.LikeOutput, error)
	FindGolfer(ctx context.Context, name string) (dto.GolferOutput, error)
}
