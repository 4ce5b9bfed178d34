package export

import (
	"strings"

	"github.com/atotto/clipboard"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// ClipboardText renders the heading followed by tab separated rows.
func ClipboardText(data Data) string {
	lines := make([]string, 0, len(data.Rows)+1)
	lines = append(lines, data.Heading())
	for _, r := range data.Rows {
		lines = append(lines, r.Date+"\t"+r.Group+"\t"+r.Content)
	}
	return strings.Join(lines, "\n")
}

// Copy puts the clipboard text on the system clipboard.
func Copy(data Data) error {
	if len(data.Rows) == 0 {
		return ErrEmpty
	}
	return clipboardWriteAll(ClipboardText(data))
}
