package in

import (
	"context"

	"nextround/internal/modules/swings/dto"
	swingsin "nextround/internal/modules/swings/port/in"
)

type CLIHandler struct {
	usecase swingsin.Usecase
}

func NewCLIHandler(usecase swingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListSwings(ctx context.Context, sort string) ([]dto.SwingOutput, error) {
	return h.usecase.ListSwings(ctx, dto.ListInput{Sort: sort})
}

func (h CLIHandler) GetSwing(ctx context.Context, id int) (dto.SwingOutput, error) {
	return h.usecase.GetSwing(ctx, id)
}

func (h CLIHandler) Compare(ctx context.Context, toggles []int) (dto.ComparisonOutput, error) {
	return h.usecase.Compare(ctx, dto.CompareInput{Toggles: toggles})
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) AddSwing(ctx context.Context, date string, score int, tips []string) (dto.SwingOutput, error) {
	return h.usecase.AddSwing(ctx, dto.AddSwingInput{Date: date, Score: score, Tips: tips})
}

// CompareReport applies toggles and returns the comparison as markdown.
func (h CLIHandler) CompareReport(ctx context.Context, toggles []int) (string, error) {
	c, err := h.usecase.Compare(ctx, dto.CompareInput{Toggles: toggles})
	if err != nil {
		return "", err
	}
	return ComparisonMarkdown(c), nil
}
