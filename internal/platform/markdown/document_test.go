package markdown_test

import (
	"strings"
	"testing"

	"focusflow/internal/platform/markdown"
)

func TestParseAndRenderKeepsNotes(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Parse("---\nuser: ada\n---\nmy notes\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Meta["user"] != "ada" || doc.Body != "my notes\n" {
		t.Fatalf("unexpected document %+v", doc)
	}

	doc = doc.ReplaceBlock("<!-- a -->", "<!-- b -->", "first")
	doc = doc.ReplaceBlock("<!-- a -->", "<!-- b -->", "second\n")
	out, err := doc.String()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "first") || !strings.Contains(out, "<!-- a -->\nsecond\n<!-- b -->") {
		t.Fatalf("managed block not replaced:\n%s", out)
	}
	if !strings.HasPrefix(out, "---\nuser: ada\n---\nmy notes\n") {
		t.Fatalf("frontmatter or notes lost:\n%s", out)
	}
}

func TestParseRejectsUnterminatedFrontmatter(t *testing.T) {
	t.Parallel()
	if _, err := markdown.Parse("---\nuser: ada\n"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPlainBodyHasNoFrontmatter(t *testing.T) {
	t.Parallel()
	out, err := markdown.Document{Body: "# hi\n"}.String()
	if err != nil || out != "# hi\n" {
		t.Fatalf("unexpected render %q (%v)", out, err)
	}
}

func TestTable(t *testing.T) {
	t.Parallel()
	got := markdown.Table([]string{"Date", "Count"}, [][]string{{"2024-03-01", "2"}, {"a|b"}})
	want := "| Date | Count |\n| --- | --- |\n| 2024-03-01 | 2 |\n| a\\|b |  |\n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant\n%q", got, want)
	}
}
