package in

import (
	"context"
	"fmt"

	"nextround/internal/modules/upload/dto"
	uploadin "nextround/internal/modules/upload/port/in"
	apperrors "nextround/internal/platform/errors"
	"nextround/internal/platform/markdown"
)

// Report formats accepted by CLIHandler.Report.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

const textWidth = 80

type CLIHandler struct {
	usecase uploadin.Usecase
	runner  *Runner
}

func NewCLIHandler(usecase uploadin.Usecase, timing Timing) CLIHandler {
	return CLIHandler{usecase: usecase, runner: NewRunner(usecase, timing)}
}

// Upload runs one job to completion and saves it to the swing timeline.
func (h CLIHandler) Upload(ctx context.Context, path string, onProgress func(dto.JobOutput)) (dto.JobOutput, dto.SaveOutput, error) {
	job, err := h.runner.Run(ctx, path, onProgress)
	if err != nil {
		return dto.JobOutput{}, dto.SaveOutput{}, err
	}
	saved, err := h.usecase.SaveToTimeline(ctx)
	if err != nil {
		return job, dto.SaveOutput{}, err
	}
	job.Saved = true
	return job, saved, nil
}

func (h CLIHandler) Quota(ctx context.Context) (dto.QuotaOutput, error) {
	return h.usecase.Quota(ctx)
}

// Report renders a completed job. Markdown output carries YAML frontmatter;
// text output is plain terminal rendering.
func (h CLIHandler) Report(job dto.JobOutput, format string) (string, error) {
	switch format {
	case FormatMarkdown:
		return Report(job)
	case FormatText:
		if job.Result == nil {
			return "", fmt.Errorf("job %s has no result", job.ID)
		}
		return markdown.RenderTerminal(ReportBody(*job.Result), textWidth, markdown.StyleNoTTY)
	default:
		return "", fmt.Errorf("%w: unsupported format %q", apperrors.ErrInvalidInput, format)
	}
}
