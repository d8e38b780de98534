package in

import (
	"context"

	"nextround/internal/modules/feed/dto"
	feedin "nextround/internal/modules/feed/port/in"
)

type CLIHandler struct {
	usecase feedin.Usecase
}

func NewCLIHandler(usecase feedin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, page int, golfer string) (dto.PageOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Page: page, Golfer: golfer})
}

func (h CLIHandler) ToggleLike(ctx context.Context, postID int) (dto.LikeOutput, error) {
	return h.usecase.ToggleLike(ctx, postID)
}

func (h CLIHandler) FindGolfer(ctx context.Context, name string) (dto.GolferOutput, error) {
	return h.usecase.FindGolfer(ctx, name)
}
