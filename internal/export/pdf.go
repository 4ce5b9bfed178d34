package export

import (
	"fmt"
	"io"

	"github.com/Flyrell/daymark/internal/calendar"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// WritePDF renders one section per day listing its group assignments.
func WritePDF(w io.Writer, data Data) error {
	if len(data.Rows) == 0 {
		return ErrEmpty
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, data.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s %d", data.Month, data.Year), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for i := 0; i < len(data.Rows); {
		day := data.Rows[i].Day
		date := calendar.Date(data.Year, data.Month, day)

		m.AddRow(8,
			text.NewCol(12, fmt.Sprintf("%s %d, %s", date.Month(), day, date.Weekday()), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
		)
		for ; i < len(data.Rows) && data.Rows[i].Day == day; i++ {
			r := data.Rows[i]
			m.AddRow(6,
				text.NewCol(4, "  "+r.Group, props.Text{Size: 9, Style: fontstyle.Bold}),
				text.NewCol(8, r.Content, props.Text{Size: 9}),
			)
		}
		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d rows", len(data.Rows)), props.Text{
			Size:  9,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	_, err = w.Write(doc.GetBytes())
	return err
}
