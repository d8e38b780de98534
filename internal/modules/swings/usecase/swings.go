package usecase

import (
	"context"
	"fmt"

	"nextround/internal/modules/swings/domain"
	"nextround/internal/modules/swings/dto"
	swingsin "nextround/internal/modules/swings/port/in"
	"nextround/internal/modules/swings/service"
	"nextround/internal/platform/catalog"
	apperrors "nextround/internal/platform/errors"
)

type Interactor struct {
	svc *service.SwingService
}

func NewInteractor(svc *service.SwingService) swingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListSwings(ctx context.Context, input dto.ListInput) ([]dto.SwingOutput, error) {
	swings, err := i.svc.List(ctx, domain.SortKey(input.Sort))
	if err != nil {
		return nil, err
	}
	out := make([]dto.SwingOutput, 0, len(swings))
	for _, swing := range swings {
		out = append(out, toOutput(swing))
	}
	return out, nil
}

func (i *Interactor) GetSwing(ctx context.Context, id int) (dto.SwingOutput, error) {
	swing, err := i.svc.Get(ctx, id)
	if err != nil {
		return dto.SwingOutput{}, err
	}
	return toOutput(swing), nil
}

func (i *Interactor) Compare(ctx context.Context, input dto.CompareInput) (dto.ComparisonOutput, error) {
	c, err := i.svc.Compare(ctx, input.Toggles)
	if err != nil {
		return dto.ComparisonOutput{}, err
	}
	return dto.ComparisonOutput{
		First:      toOutput(c.First),
		Second:     toOutput(c.Second),
		ScoreDelta: c.ScoreDelta,
		OnlyFirst:  c.OnlyFirst,
		OnlySecond: c.OnlySecond,
		Shared:     c.Shared,
	}, nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.svc.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{LatestScore: stats.LatestScore, MonthImprovement: stats.MonthImprovement, Total: stats.Total}, nil
}

func (i *Interactor) AddSwing(ctx context.Context, input dto.AddSwingInput) (dto.SwingOutput, error) {
	date, err := catalog.ParseDate(input.Date)
	if err != nil {
		return dto.SwingOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	swing, err := i.svc.Add(ctx, date, input.Score, input.Tips)
	if err != nil {
		return dto.SwingOutput{}, err
	}
	return toOutput(swing), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toOutput(swing domain.Swing) dto.SwingOutput {
	return dto.SwingOutput{
		ID:          swing.ID,
		Date:        swing.Date.Format(catalog.DateLayout),
		Score:       swing.Score,
		Tips:        append([]string(nil), swing.Tips...),
		Improvement: swing.Improvement,
	}
}
