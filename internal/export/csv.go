package export

import (
	"encoding/csv"
	"io"
)

var (
	csvHeader = []string{"Date", "Group", "Content"}
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
)

// WriteCSV writes the Date,Group,Content table with CRLF row endings.
func WriteCSV(w io.Writer, data Data, bom bool) error {
	if len(data.Rows) == 0 {
		return ErrEmpty
	}
	if bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range data.Rows {
		if err := cw.Write([]string{r.Date, r.Group, r.Content}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
