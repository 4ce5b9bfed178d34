package stringutil

import (
	"strings"
	"unicode"
)

// maxSlugLen caps slugs used in file names.
const maxSlugLen = 48

// Slugify turns a title or session name into a file-name friendly slug.
// Letters and digits of any script are kept and lowercased; every other run
// of characters becomes a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	n := 0
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingHyphen = b.Len() > 0
			continue
		}
		need := 1
		if pendingHyphen {
			need = 2
		}
		if n+need > maxSlugLen {
			break
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
			n++
		}
		b.WriteRune(unicode.ToLower(r))
		n++
	}
	return b.String()
}
