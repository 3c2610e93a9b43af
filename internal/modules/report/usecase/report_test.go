package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rsc.io/pdf"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	reportout "focusflow/internal/modules/report/adapter/out"
	"focusflow/internal/modules/report/service"
	"focusflow/internal/modules/report/usecase"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 3, 2, 18, 30, 0, 0, time.UTC) }

type staticSource struct {
	bundle analyticsdto.Bundle
	err    error
}

func (s staticSource) Bundle(context.Context) (analyticsdto.Bundle, error) {
	return s.bundle, s.err
}

func bundle() analyticsdto.Bundle {
	b := analyticsdto.Bundle{}
	b.TotalPomodoros.Total = 2
	b.TotalPomodoros.Daily = []analyticsdto.DailyStat{{Date: "2024-03-01", Count: 2, AvgMinutes: 25, Completed: 2}}
	b.TotalPomodoros.Weekly = []analyticsdto.WeeklyStat{{Week: "2024-W09", Count: 2}}
	b.TotalPomodoros.Monthly = []analyticsdto.MonthlyStat{{Month: "2024-03", Count: 2}}
	b.SessionStatusStats.Completed = 2
	b.AverageFocusTime.Overall = 25
	return b
}

func newInteractor(source staticSource) *usecase.Interactor {
	svc := service.NewReportService(
		fixedClock{},
		"ada",
		source,
		reportout.NewGlamourRenderer("notty"),
		reportout.NewMarotoWriter(),
		reportout.NewRSCInspector(),
		reportout.NewFileNoteStore(),
	)
	return usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestStatsRendersForTerminal(t *testing.T) {
	t.Parallel()
	out, err := newInteractor(staticSource{bundle: bundle()}).Stats(context.Background(), 100)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"FocusFlow Report", "2024-03-01", "2024-W09"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestExportMarkdownKeepsUserNotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "focus.md")
	if err := os.WriteFile(path, []byte("# Journal\n\nFelt good today.\n"), 0o644); err != nil {
		t.Fatalf("seed note: %v", err)
	}
	uc := newInteractor(staticSource{bundle: bundle()})
	if _, err := uc.ExportMarkdown(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := uc.ExportMarkdown(ctx, path); err != nil {
		t.Fatalf("second export: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "Felt good today.") {
		t.Fatalf("user notes were lost:\n%s", content)
	}
	if strings.Count(content, "<!-- focusflow:report:start -->") != 1 {
		t.Fatalf("expected exactly one managed block:\n%s", content)
	}
	if !strings.Contains(content, "focusflow_user: ada") || !strings.HasPrefix(content, "---\n") {
		t.Fatalf("expected frontmatter:\n%s", content)
	}
}

func TestExportPDFWritesReadableReport(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out", "report.pdf")
	export, err := newInteractor(staticSource{bundle: bundle()}).ExportPDF(context.Background(), path)
	if err != nil {
		t.Fatalf("export pdf: %v", err)
	}
	if export.Pages < 1 || export.Path != path {
		t.Fatalf("unexpected export %+v", export)
	}
	doc, err := pdf.Open(path)
	if err != nil {
		t.Fatalf("open pdf: %v", err)
	}
	text := strings.Builder{}
	for _, run := range doc.Page(1).Content().Text {
		text.WriteString(run.S)
	}
	if !strings.Contains(text.String(), "FocusFlow") {
		t.Fatalf("pdf text missing title: %q", text.String())
	}
}

func TestSourceFailureIsReported(t *testing.T) {
	t.Parallel()
	boom := errors.New("server down")
	_, err := newInteractor(staticSource{err: boom}).Markdown(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
