package in

import (
	"context"

	"focusflow/internal/modules/report/dto"
)

type Usecase interface {
	// Stats renders the report for a terminal of the given width.
	Stats(ctx context.Context, width int) (string, error)
	Markdown(ctx context.Context) (string, error)
	// ExportMarkdown writes the report into a managed block of path, keeping
	// anything the user wrote around it.
	ExportMarkdown(ctx context.Context, path string) (dto.Export, error)
	ExportPDF(ctx context.Context, path string) (dto.Export, error)
}
