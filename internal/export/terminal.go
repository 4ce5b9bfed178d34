package export

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal renders the rows as a table styled for a terminal. style is a
// glamour style name: "auto", "dark", "light" or "notty" for plain output.
func Terminal(data Data, style string, width int) (string, error) {
	if len(data.Rows) == 0 {
		return "", ErrEmpty
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(Markdown(data))
	if err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return out, nil
}
