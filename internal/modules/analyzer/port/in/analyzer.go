package in

import (
	"context"

	"nextround/internal/modules/analyzer/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.AnalyzerInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	Analyze(ctx context.Context, input dto.AnalyzeInput) (dto.AnalysisOutput, error)
}
