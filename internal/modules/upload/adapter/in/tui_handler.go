package in

import (
	"context"

	"nextround/internal/modules/upload/dto"
	uploadin "nextround/internal/modules/upload/port/in"
	"nextround/internal/platform/markdown"
)

// TUIHandler exposes the pipeline step by step so the Bubble Tea update loop
// can own it and drive it with its own timers.
type TUIHandler struct {
	usecase uploadin.Usecase
}

func NewTUIHandler(usecase uploadin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Snapshot(ctx context.Context) dto.JobOutput {
	return h.usecase.Snapshot(ctx)
}

func (h TUIHandler) Quota(ctx context.Context) (dto.QuotaOutput, error) {
	return h.usecase.Quota(ctx)
}

func (h TUIHandler) Start(ctx context.Context, path string) (dto.JobOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Path: path})
}

func (h TUIHandler) Tick(ctx context.Context, jobID string) dto.TickOutput {
	return h.usecase.Tick(ctx, jobID)
}

// Analyze is safe to call from a tea.Cmd goroutine.
func (h TUIHandler) Analyze(ctx context.Context, job dto.JobOutput) (dto.ResultOutput, error) {
	return h.usecase.Analyze(ctx, job)
}

func (h TUIHandler) Finish(ctx context.Context, jobID string, result dto.ResultOutput) (dto.JobOutput, error) {
	return h.usecase.Finish(ctx, dto.FinishInput{JobID: jobID, Result: result})
}

func (h TUIHandler) Fail(ctx context.Context, jobID string, cause error) dto.JobOutput {
	return h.usecase.Fail(ctx, jobID, cause)
}

func (h TUIHandler) Cancel(ctx context.Context) error {
	return h.usecase.Cancel(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) Save(ctx context.Context) (dto.SaveOutput, error) {
	return h.usecase.SaveToTimeline(ctx)
}

// RenderResult renders the analysis of a completed job for a terminal of the
// given width.
func (h TUIHandler) RenderResult(job dto.JobOutput, width int) (string, error) {
	if job.Result == nil {
		return "", nil
	}
	return markdown.RenderTerminal(ReportBody(*job.Result), width, markdown.StyleDark)
}
