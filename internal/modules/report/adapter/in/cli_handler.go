package in

import (
	"context"

	"focusflow/internal/modules/report/dto"
	reportin "focusflow/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context, width int) (string, error) {
	return h.usecase.Stats(ctx, width)
}

func (h CLIHandler) Markdown(ctx context.Context) (string, error) {
	return h.usecase.Markdown(ctx)
}

func (h CLIHandler) ExportMarkdown(ctx context.Context, path string) (dto.Export, error) {
	return h.usecase.ExportMarkdown(ctx, path)
}

func (h CLIHandler) ExportPDF(ctx context.Context, path string) (dto.Export, error) {
	return h.usecase.ExportPDF(ctx, path)
}
