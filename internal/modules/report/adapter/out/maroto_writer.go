package out

import (
	"os"
	"path/filepath"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"focusflow/internal/modules/report/domain"
	reportout "focusflow/internal/modules/report/port/out"
)

type MarotoWriter struct{}

func NewMarotoWriter() reportout.PDFWriter {
	return &MarotoWriter{}
}

func (w *MarotoWriter) Write(report domain.Report, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(domain.Title, props.Text{Top: 3, Style: consts.Bold, Align: consts.Center, Size: 16})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				sub := report.GeneratedAt.Format("2006-01-02 15:04")
				if report.User != "" {
					sub = report.User + " - " + sub
				}
				m.Text(sub, props.Text{Top: 2, Align: consts.Center, Size: 10})
			})
		})
	})

	heading(m, "Summary")
	for _, line := range report.SummaryLines() {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(line[0], props.Text{Size: 10})
			})
			m.Col(6, func() {
				m.Text(line[1], props.Text{Size: 10, Style: consts.Bold, Align: consts.Right})
			})
		})
	}

	table(m, "Daily", report.Daily)
	table(m, "Weekly", report.Weekly)
	table(m, "Monthly", report.Monthly)

	return m.OutputFileAndClose(path)
}

func heading(m pdf.Maroto, title string) {
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{Top: 5, Style: consts.Bold, Size: 14})
		})
	})
}

func table(m pdf.Maroto, title string, t domain.Table) {
	heading(m, title)
	if len(t.Rows) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("No sessions yet.", props.Text{Size: 10, Style: consts.Italic})
			})
		})
		return
	}
	content := props.TableListContent{Size: 10, GridSizes: t.GridSizes}
	m.TableList(t.Headers, t.Rows, props.TableList{
		HeaderProp:           content,
		ContentProp:          content,
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
	})
}
