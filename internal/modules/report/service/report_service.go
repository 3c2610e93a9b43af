package service

import (
	"context"
	"fmt"

	"focusflow/internal/modules/report/domain"
	reportout "focusflow/internal/modules/report/port/out"
	"focusflow/internal/platform/clock"
	"focusflow/internal/platform/markdown"
)

const (
	blockStart = "<!-- focusflow:report:start -->"
	blockEnd   = "<!-- focusflow:report:end -->"
)

type ReportService struct {
	clock     clock.Clock
	user      string
	source    reportout.BundleSource
	terminal  reportout.TerminalRenderer
	pdf       reportout.PDFWriter
	inspector reportout.PDFInspector
	notes     reportout.NoteStore
}

func NewReportService(
	clock clock.Clock,
	user string,
	source reportout.BundleSource,
	terminal reportout.TerminalRenderer,
	pdf reportout.PDFWriter,
	inspector reportout.PDFInspector,
	notes reportout.NoteStore,
) *ReportService {
	return &ReportService{
		clock:     clock,
		user:      user,
		source:    source,
		terminal:  terminal,
		pdf:       pdf,
		inspector: inspector,
		notes:     notes,
	}
}

func (s *ReportService) Build(ctx context.Context) (domain.Report, error) {
	bundle, err := s.source.Bundle(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("fetch analytics: %w", err)
	}
	return domain.Build(bundle, s.user, s.clock.Now()), nil
}

func (s *ReportService) Stats(ctx context.Context, width int) (string, error) {
	report, err := s.Build(ctx)
	if err != nil {
		return "", err
	}
	return s.terminal.Render(report.Markdown(), width)
}

func (s *ReportService) ExportMarkdown(ctx context.Context, path string) error {
	report, err := s.Build(ctx)
	if err != nil {
		return err
	}
	existing, err := s.notes.Read(path)
	if err != nil {
		return err
	}
	doc, err := markdown.Parse(existing)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Meta["focusflow_generated_at"] = report.GeneratedAt.Format("2006-01-02T15:04:05Z07:00")
	if report.User != "" {
		doc.Meta["focusflow_user"] = report.User
	}
	content, err := doc.ReplaceBlock(blockStart, blockEnd, report.Markdown()).String()
	if err != nil {
		return err
	}
	return s.notes.Write(path, content)
}

func (s *ReportService) ExportPDF(ctx context.Context, path string) (int, error) {
	report, err := s.Build(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.pdf.Write(report, path); err != nil {
		return 0, fmt.Errorf("write pdf: %w", err)
	}
	pages, err := s.inspector.Pages(path)
	if err != nil {
		return 0, fmt.Errorf("verify pdf: %w", err)
	}
	return pages, nil
}
