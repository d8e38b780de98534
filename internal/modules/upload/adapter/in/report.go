package in

import (
	"fmt"
	"strings"

	"nextround/internal/modules/upload/dto"
	"nextround/internal/platform/markdown"
)

type reportMeta struct {
	Job   string `yaml:"job"`
	Media string `yaml:"media"`
	Score int    `yaml:"score"`
	Saved bool   `yaml:"saved"`
}

// Report renders a completed job as markdown with YAML frontmatter. It
// returns an error when the job has no result yet.
func Report(job dto.JobOutput) (string, error) {
	if job.Result == nil {
		return "", fmt.Errorf("job %s has no result", job.ID)
	}
	return markdown.Document[reportMeta]{
		Meta: reportMeta{Job: job.ID, Media: job.Media.Name, Score: job.Result.Score, Saved: job.Saved},
		Body: ReportBody(*job.Result),
	}.Render()
}

// ReportBody is the markdown shown under the frontmatter and in the TUI.
func ReportBody(result dto.ResultOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Swing Analysis\n\n**Score: %d/100**\n\n", result.Score)
	b.WriteString("## Areas to improve\n\n")
	for _, tip := range result.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	b.WriteString("\n## Strengths\n\n")
	for _, s := range result.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return b.String()
}
