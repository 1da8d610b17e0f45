package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "windows line endings",
			input:    "first\r\nsecond\rthird",
			expected: "first\nsecond\nthird",
		},
		{
			name:     "runs of spaces and tabs collapse",
			input:    "Diego   Rossi\tSoftware \t Engineer",
			expected: "Diego Rossi Software Engineer",
		},
		{
			name:     "trailing whitespace trimmed per line",
			input:    "  Diego Rossi  \n  Milano  ",
			expected: "Diego Rossi\nMilano",
		},
		{
			name:     "excess blank lines collapse to one",
			input:    "Experience\n\n\n\nSoftware Engineer",
			expected: "Experience\n\nSoftware Engineer",
		},
		{
			name:     "leading and trailing blank lines removed",
			input:    "\n\nDiego Rossi\n\n",
			expected: "Diego Rossi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
