package in

import (
	"context"

	"nextround/internal/modules/analyzer/dto"
	analyzerin "nextround/internal/modules/analyzer/port/in"
)

type CLIHandler struct {
	usecase analyzerin.Usecase
}

func NewCLIHandler(usecase analyzerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.AnalyzerInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
