package i18n

import (
	"regexp"
	"strings"
)

// Proficiency is the level derived from a language entry's name string.
// The level is never stored separately; entries like "Italian (Native)"
// encode it in the name and templates derive it at render time.
type Proficiency struct {
	Text       string // the original entry text
	Name       string // cleaned language name without the proficiency part
	Percentage int    // bar width for templates that render levels graphically
	Label      string // "Native", "Fluent", "Intermediate", "Basic" or ""
}

var (
	nativeRe       = regexp.MustCompile(`(?i)(native|madrelingua|mother tongue|muttersprache|nativo|langue maternelle)`)
	fluentRe       = regexp.MustCompile(`(?i)(fluent|proficient|c2|c1|avanzato|fluente|courant|verhandlungssicher)`)
	intermediateRe = regexp.MustCompile(`(?i)(intermediate|b2|b1|intermedio|intermédiaire|fließend)`)
	basicRe        = regexp.MustCompile(`(?i)(basic|beginner|elementary|a2|a1|base|débutant|grundkenntnisse)`)
	trailerRe      = regexp.MustCompile(`\s*\(.*?\)|-.*$`)
)

// ParseProficiency derives the proficiency level encoded in a language name,
// e.g. "English - Fluent" or "Italiano (Madrelingua)". Entries with no
// recognizable level default to an unlabeled intermediate bar.
func ParseProficiency(entry string) Proficiency {
	p := Proficiency{Text: entry, Percentage: 60}

	switch {
	case nativeRe.MatchString(entry):
		p.Percentage, p.Label = 100, "Native"
	case fluentRe.MatchString(entry):
		p.Percentage, p.Label = 90, "Fluent"
	case intermediateRe.MatchString(entry):
		p.Percentage, p.Label = 70, "Intermediate"
	case basicRe.MatchString(entry):
		p.Percentage, p.Label = 40, "Basic"
	}

	p.Name = strings.TrimSpace(trailerRe.ReplaceAllString(entry, ""))
	if p.Name == "" {
		p.Name = entry
	}
	return p
}
