package stringutil

import "strings"

// SplitList splits a comma separated list. Both the ASCII comma and the
// full-width comma are accepted. Items are trimmed and blanks are dropped.
func SplitList(s string) []string {
	s = strings.ReplaceAll(s, "，", ",")
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
