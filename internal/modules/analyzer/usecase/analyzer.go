package usecase

import (
	"context"

	"nextround/internal/modules/analyzer/domain"
	"nextround/internal/modules/analyzer/dto"
	analyzerin "nextround/internal/modules/analyzer/port/in"
	"nextround/internal/modules/analyzer/service"
)

type Interactor struct {
	svc *service.AnalyzerService
}

func NewInteractor(svc *service.AnalyzerService) analyzerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.AnalyzerInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error) {
	name := input.Analyzer
	if name == "" {
		name = domain.BuiltinName
	}
	result, err := i.svc.Analyze(ctx, name, domain.Request{
		JobID:      input.JobID,
		MediaName:  input.MediaName,
		MediaBytes: input.MediaBytes,
	})
	if err != nil {
		return dto.AnalysisOutput{}, err
	}
	return dto.AnalysisOutput{
		Analyzer:  name,
		Score:     result.Score,
		Tips:      result.Tips,
		Strengths: result.Strengths,
	}, nil
}
