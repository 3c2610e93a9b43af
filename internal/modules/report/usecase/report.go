package usecase

import (
	"context"

	"focusflow/internal/modules/report/dto"
	reportin "focusflow/internal/modules/report/port/in"
	"focusflow/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Stats(ctx context.Context, width int) (string, error) {
	return i.svc.Stats(ctx, width)
}

func (i *Interactor) Markdown(ctx context.Context) (string, error) {
	report, err := i.svc.Build(ctx)
	if err != nil {
		return "", err
	}
	return report.Markdown(), nil
}

func (i *Interactor) ExportMarkdown(ctx context.Context, path string) (dto.Export, error) {
	if err := i.svc.ExportMarkdown(ctx, path); err != nil {
		return dto.Export{}, err
	}
	return dto.Export{Path: path, Pages: 1}, nil
}

func (i *Interactor) ExportPDF(ctx context.Context, path string) (dto.Export, error) {
	pages, err := i.svc.ExportPDF(ctx, path)
	if err != nil {
		return dto.Export{}, err
	}
	return dto.Export{Path: path, Pages: pages}, nil
}
