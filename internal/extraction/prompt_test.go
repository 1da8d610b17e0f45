package extraction

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptIncludesLanguage(t *testing.T) {
	prompt := BuildPrompt("resume text", "Español")

	assert.Contains(t, prompt, "in Español")
	assert.Contains(t, prompt, "resume text")
	assert.Contains(t, prompt, "personal_info")
	assert.Contains(t, prompt, "Return only the raw JSON")
}

func TestBuildPromptTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("x", MaxInputChars+5000)
	marker := strings.Repeat("x", MaxInputChars)

	prompt := BuildPrompt(long, "English")

	assert.Contains(t, prompt, marker)
	// Nothing beyond the cutoff survives.
	assert.NotContains(t, prompt, strings.Repeat("x", MaxInputChars+1))
}

func TestBuildPromptTruncatesOnRuneBoundary(t *testing.T) {
	// A two-byte rune straddling the byte cutoff must be dropped whole;
	// half a rune would make the whole prompt invalid UTF-8.
	input := strings.Repeat("a", MaxInputChars-1) + "è" + "trailing text past the cutoff"

	prompt := BuildPrompt(input, "Italiano")

	assert.True(t, utf8.ValidString(prompt))
	assert.NotContains(t, prompt, "è")
	assert.NotContains(t, prompt, "trailing text past the cutoff")
	assert.Contains(t, prompt, strings.Repeat("a", MaxInputChars-1))
}

func TestBuildPromptKeepsShortInputIntact(t *testing.T) {
	text := "Jane Doe, software engineer in Berlin"
	prompt := BuildPrompt(text, "Deutsch")
	assert.True(t, strings.HasSuffix(prompt, text))
}
