// Package ingestion extracts raw text from the sources a resume can arrive
// as: a LinkedIn PDF export, a plain-text or HTML file, or a public profile
// URL. The output is cleaned text ready for the extraction prompt.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes line endings, collapses runs of spaces, and trims
// excessive blank lines while preserving the line structure PDF extractors
// tend to produce.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimSpace(multiSpaceRe.ReplaceAllString(line, " "))
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
