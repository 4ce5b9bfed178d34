package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "yes,no", []string{"yes", "no"}},
		{"spaces trimmed", " yes , no ", []string{"yes", "no"}},
		{"blanks dropped", "a,,b, ,", []string{"a", "b"}},
		{"full-width comma", "是，否", []string{"是", "否"}},
		{"mixed commas", "a，b,c", []string{"a", "b", "c"}},
		{"single item", "only", []string{"only"}},
		{"empty string", "", nil},
		{"only separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
