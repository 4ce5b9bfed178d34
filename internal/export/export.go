// Package export turns board rows into files and clipboard text.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Flyrell/daymark/internal/board"
	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/Flyrell/daymark/internal/stringutil"
)

// DefaultTitle heads the clipboard dump and the rendered documents.
const DefaultTitle = "Random Calendar Marker"

// ErrEmpty is returned when there is nothing to export.
var ErrEmpty = errors.New("nothing to export: assign a group first")

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatCSV, FormatText, FormatHTML, FormatPDF}

// ParseFormat validates a format name. An empty name means CSV.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatCSV, nil
	}
	if s == "txt" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q (supported: csv, text, html, pdf)", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// Data is everything an exporter needs.
type Data struct {
	Title string
	Year  int
	Month time.Month
	Rows  []board.Row
}

// FromBoard collects the rows of a board.
func FromBoard(b *board.Board, title string) Data {
	if title == "" {
		title = DefaultTitle
	}
	return Data{
		Title: title,
		Year:  b.Year(),
		Month: b.Month(),
		Rows:  b.Rows(),
	}
}

// Heading is the title line, e.g. "Random Calendar Marker (2026-10)".
func (d Data) Heading() string {
	return fmt.Sprintf("%s (%s)", d.Title, calendar.FormatPeriod(d.Year, d.Month))
}

// Options tunes individual exporters.
type Options struct {
	// BOM prefixes CSV output with a UTF-8 byte order mark.
	BOM bool
}

// Write renders data in the given format.
func Write(w io.Writer, f Format, data Data, opts Options) error {
	if len(data.Rows) == 0 {
		return ErrEmpty
	}
	switch f {
	case FormatCSV:
		return WriteCSV(w, data, opts.BOM)
	case FormatText:
		_, err := io.WriteString(w, ClipboardText(data)+"\n")
		return err
	case FormatHTML:
		return WriteHTML(w, data)
	case FormatPDF:
		return WritePDF(w, data)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// FileName builds the default output name, e.g. "daymark-2026-10.csv".
// The prefix is slugified; an empty slug falls back to "daymark".
func FileName(prefix string, data Data, f Format) string {
	slug := stringutil.Slugify(prefix)
	if slug == "" {
		slug = "daymark"
	}
	return fmt.Sprintf("%s-%s%s", slug, calendar.FormatPeriod(data.Year, data.Month), f.Ext())
}
