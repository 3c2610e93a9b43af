package out

import (
	"fmt"

	"rsc.io/pdf"

	reportout "focusflow/internal/modules/report/port/out"
)

type RSCInspector struct{}

func NewRSCInspector() reportout.PDFInspector {
	return &RSCInspector{}
}

func (RSCInspector) Pages(path string) (int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return doc.NumPage(), nil
}
