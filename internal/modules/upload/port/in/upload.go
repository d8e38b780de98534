package in

import (
	"context"

	"nextround/internal/modules/upload/dto"
)

// Usecase drives one ingestion pipeline. Apart from Analyze, calls must come
// from a single goroutine.
type Usecase interface {
	Snapshot(ctx context.Context) dto.JobOutput
	Quota(ctx context.Context) (dto.QuotaOutput, error)
	Inspect(ctx context.Context, path string) (dto.MediaOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.JobOutput, error)
	Tick(ctx context.Context, jobID string) dto.TickOutput
	Analyze(ctx context.Context, job dto.JobOutput) (dto.ResultOutput, error)
	Finish(ctx context.Context, input dto.FinishInput) (dto.JobOutput, error)
	Fail(ctx context.Context, jobID string, cause error) dto.JobOutput
	Cancel(ctx context.Context) error
	Reset(ctx context.Context) error
	SaveToTimeline(ctx context.Context) (dto.SaveOutput, error)
}
