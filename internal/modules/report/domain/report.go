package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	"focusflow/internal/platform/markdown"
)

const Title = "FocusFlow Report"

type Summary struct {
	Total              int
	Completed          int
	Interrupted        int
	Aborted            int
	OverallAvgMinutes  int
	CurrentStreak      int
	LongestStreak      int
	MostProductiveHour int
}

type Table struct {
	Headers   []string
	Rows      [][]string
	GridSizes []uint
}

// Report is a layout-neutral view of an analytics bundle shared by the
// terminal, Markdown and PDF renderings.
type Report struct {
	User        string
	GeneratedAt time.Time
	Summary     Summary
	Daily       Table
	Weekly      Table
	Monthly     Table
}

func Build(bundle analyticsdto.Bundle, user string, at time.Time) Report {
	r := Report{
		User:        user,
		GeneratedAt: at,
		Summary: Summary{
			Total:              bundle.TotalPomodoros.Total,
			Completed:          bundle.SessionStatusStats.Completed,
			Interrupted:        bundle.SessionStatusStats.Interrupted,
			Aborted:            bundle.SessionStatusStats.Aborted,
			OverallAvgMinutes:  bundle.AverageFocusTime.Overall,
			CurrentStreak:      bundle.ProductivityPatterns.CurrentStreak,
			LongestStreak:      bundle.ProductivityPatterns.LongestStreak,
			MostProductiveHour: bundle.ProductivityPatterns.MostProductiveHour,
		},
		Daily: Table{
			Headers:   []string{"Date", "Sessions", "Avg min", "Completed", "Interrupted", "Aborted"},
			GridSizes: []uint{3, 2, 2, 2, 2, 1},
		},
		Weekly:  Table{Headers: []string{"Week", "Sessions"}, GridSizes: []uint{6, 6}},
		Monthly: Table{Headers: []string{"Month", "Sessions"}, GridSizes: []uint{6, 6}},
	}
	for _, d := range bundle.TotalPomodoros.Daily {
		r.Daily.Rows = append(r.Daily.Rows, []string{
			d.Date, itoa(d.Count), itoa(d.AvgMinutes), itoa(d.Completed), itoa(d.Interrupted), itoa(d.Aborted),
		})
	}
	for _, w := range bundle.TotalPomodoros.Weekly {
		r.Weekly.Rows = append(r.Weekly.Rows, []string{w.Week, itoa(w.Count)})
	}
	for _, m := range bundle.TotalPomodoros.Monthly {
		r.Monthly.Rows = append(r.Monthly.Rows, []string{m.Month, itoa(m.Count)})
	}
	return r
}

// SummaryLines are label/value pairs in display order.
func (r Report) SummaryLines() [][2]string {
	s := r.Summary
	return [][2]string{
		{"Total sessions", itoa(s.Total)},
		{"Completed", itoa(s.Completed)},
		{"Interrupted", itoa(s.Interrupted)},
		{"Aborted", itoa(s.Aborted)},
		{"Average focus", fmt.Sprintf("%d min", s.OverallAvgMinutes)},
		{"Current streak", days(s.CurrentStreak)},
		{"Longest streak", days(s.LongestStreak)},
		{"Most productive hour", fmt.Sprintf("%02d:00", s.MostProductiveHour)},
	}
}

func (r Report) Markdown() string {
	b := strings.Builder{}
	b.WriteString("# " + Title + "\n\n")
	if r.User != "" {
		b.WriteString(fmt.Sprintf("_%s, %s_\n\n", r.User, r.GeneratedAt.Format("2006-01-02 15:04")))
	} else {
		b.WriteString(fmt.Sprintf("_%s_\n\n", r.GeneratedAt.Format("2006-01-02 15:04")))
	}
	b.WriteString("## Summary\n\n")
	lines := r.SummaryLines()
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l[0], l[1]})
	}
	b.WriteString(markdown.Table([]string{"Metric", "Value"}, rows))
	section(&b, "Daily", r.Daily)
	section(&b, "Weekly", r.Weekly)
	section(&b, "Monthly", r.Monthly)
	return b.String()
}

func section(b *strings.Builder, title string, t Table) {
	b.WriteString("\n## " + title + "\n\n")
	if len(t.Rows) == 0 {
		b.WriteString("No sessions yet.\n")
		return
	}
	b.WriteString(markdown.Table(t.Headers, t.Rows))
}

func itoa(n int) string { return strconv.Itoa(n) }

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
