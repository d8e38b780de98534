package markdown_test

import (
	"strings"
	"testing"

	"nextround/internal/platform/markdown"
)

type reportMeta struct {
	Job   string `yaml:"job"`
	Score int    `yaml:"score"`
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.Document[reportMeta]{
		Meta: reportMeta{Job: "job-1", Score: 91},
		Body: "# Report\n",
	}.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := markdown.Parse[reportMeta](rendered)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Meta != (reportMeta{Job: "job-1", Score: 91}) {
		t.Fatalf("unexpected meta: %+v", doc.Meta)
	}
	if doc.Body != "# Report\n" {
		t.Fatalf("unexpected body: %q", doc.Body)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Parse[reportMeta]("plain")
	if err != nil || doc.Meta != (reportMeta{}) || doc.Body != "plain" {
		t.Fatalf("unexpected parse: %+v %v", doc, err)
	}
	if _, err := markdown.Parse[reportMeta]("---\nscore: 1\n"); err == nil {
		t.Fatalf("expected missing fence error")
	}
}

func TestRenderTerminalPlainStyle(t *testing.T) {
	t.Parallel()
	out, err := markdown.RenderTerminal("## Areas for Improvement\n\n- Follow through more completely\n", 60, markdown.StyleNoTTY)
	if err != nil {
		t.Fatalf("render terminal: %v", err)
	}
	if !strings.Contains(out, "Follow through more completely") {
		t.Fatalf("rendered output lost content: %q", out)
	}
}
