package board

import (
	"fmt"
	"sort"

	"github.com/Flyrell/daymark/internal/calendar"
)

// Row is one resolved (date, group, content) tuple.
type Row struct {
	Day     int
	Date    string // YYYY-MM-DD
	Group   string
	Content string
}

// Summary counts the rows and the days they cover.
type Summary struct {
	Rows int
	Days int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d rows (covering %d days)", s.Rows, s.Days)
}

// Rows returns every assignment ordered by day, then group name.
func (b *Board) Rows() []Row {
	days := make([]int, 0, len(b.assignments))
	for d := range b.assignments {
		days = append(days, d)
	}
	sort.Ints(days)

	var rows []Row
	for _, d := range days {
		inner := b.assignments[d]
		groups := make([]string, 0, len(inner))
		for g := range inner {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			rows = append(rows, Row{
				Day:     d,
				Date:    calendar.FormatDay(b.year, b.month, d),
				Group:   g,
				Content: inner[g],
			})
		}
	}
	return rows
}

// Summary returns the row and covered-day counts.
func (b *Board) Summary() Summary {
	n := 0
	for _, inner := range b.assignments {
		n += len(inner)
	}
	return Summary{Rows: n, Days: len(b.assignments)}
}

// ResultLines renders the result list: a summary header followed by one
// "date  ->  group / content" line per row. It is empty when nothing is
// assigned.
func (b *Board) ResultLines() []string {
	rows := b.Rows()
	if len(rows) == 0 {
		return nil
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, b.Summary().String())
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s  ->  %s / %s", r.Date, r.Group, r.Content))
	}
	return lines
}
