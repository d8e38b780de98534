package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Document is a markdown body with typed YAML frontmatter.
type Document[M any] struct {
	Meta M
	Body string
}

func (d Document[M]) Render() (string, error) {
	raw, err := yaml.Marshal(d.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if !strings.HasPrefix(d.Body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}

// Parse decodes content produced by Render. Content without a leading fence
// is all body and leaves Meta zero.
func Parse[M any](content string) (Document[M], error) {
	var doc Document[M]
	if !strings.HasPrefix(content, fence) {
		doc.Body = content
		return doc, nil
	}
	header, body, ok := strings.Cut(strings.TrimPrefix(content, fence), "\n"+fence)
	if !ok {
		return doc, fmt.Errorf("frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(header), &doc.Meta); err != nil {
		return doc, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	doc.Body = strings.TrimPrefix(body, "\n")
	return doc, nil
}
