package out

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	"focusflow/internal/modules/report/domain"
)

type BundleSource interface {
	Bundle(ctx context.Context) (analyticsdto.Bundle, error)
}

type TerminalRenderer interface {
	Render(markdown string, width int) (string, error)
}

type PDFWriter interface {
	Write(report domain.Report, path string) error
}

type PDFInspector interface {
	Pages(path string) (int, error)
}

type NoteStore interface {
	// Read returns "" when path does not exist.
	Read(path string) (string, error)
	Write(path, content string) error
}
