package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// cellEscaper backslash-escapes inline markdown punctuation so cell text is
// rendered literally. Newlines would end the table row.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
	"!", `\!`,
	"#", `\#`,
	"\n", " ",
	"\r", "",
)

// Markdown renders the rows as a GFM table under a level-one heading.
func Markdown(data Data) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cellEscaper.Replace(data.Heading()))
	b.WriteString("| Date | Group | Content |\n")
	b.WriteString("|------|-------|---------|\n")
	for _, r := range data.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Date, cellEscaper.Replace(r.Group), cellEscaper.Replace(r.Content))
	}
	return b.String()
}

// WriteHTML renders the markdown table to a standalone HTML page.
func WriteHTML(w io.Writer, data Data) error {
	if len(data.Rows) == 0 {
		return ErrEmpty
	}
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(data)), &body); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	_, err := fmt.Fprintf(w, htmlPage, escapeTitle(data.Heading()), body.String())
	return err
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
</style>
</head>
<body>
%s</body>
</html>
`

var titleEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeTitle(s string) string {
	return titleEscaper.Replace(s)
}
