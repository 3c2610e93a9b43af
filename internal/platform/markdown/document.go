package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Document is a Markdown file with optional YAML frontmatter.
type Document struct {
	Meta map[string]any
	Body string
}

func Parse(content string) (Document, error) {
	if !strings.HasPrefix(content, separator) {
		return Document{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, separator)
	raw, body, ok := strings.Cut(rest, "\n"+separator)
	if !ok {
		return Document{}, fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return Document{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return Document{Meta: meta, Body: body}, nil
}

func (d Document) String() (string, error) {
	buf := bytes.Buffer{}
	if len(d.Meta) > 0 {
		raw, err := yaml.Marshal(d.Meta)
		if err != nil {
			return "", fmt.Errorf("marshal frontmatter: %w", err)
		}
		buf.WriteString(separator)
		buf.Write(raw)
		buf.WriteString(separator)
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}

// ReplaceBlock swaps the text between two marker lines, or appends a fresh
// block when the markers are absent. Text outside the markers is kept.
func (d Document) ReplaceBlock(startMarker, endMarker, generated string) Document {
	block := startMarker + "\n" + strings.TrimRight(generated, "\n") + "\n" + endMarker
	start := strings.Index(d.Body, startMarker)
	end := strings.Index(d.Body, endMarker)
	switch {
	case start >= 0 && end > start:
		d.Body = d.Body[:start] + block + d.Body[end+len(endMarker):]
	case strings.TrimSpace(d.Body) == "":
		d.Body = block + "\n"
	case strings.HasSuffix(d.Body, "\n"):
		d.Body = d.Body + "\n" + block + "\n"
	default:
		d.Body = d.Body + "\n\n" + block + "\n"
	}
	return d
}

// Table renders a GitHub-flavored table. Pipes inside cells are escaped.
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	b := strings.Builder{}
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = strings.ReplaceAll(cells[i], "|", `\|`)
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}
