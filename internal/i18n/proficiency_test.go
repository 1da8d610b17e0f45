package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProficiency(t *testing.T) {
	tests := []struct {
		name       string
		entry      string
		wantName   string
		wantLabel  string
		wantPct    int
	}{
		{"native in parentheses", "Italiano (Madrelingua)", "Italiano", "Native", 100},
		{"native english wording", "English (Native)", "English", "Native", 100},
		{"fluent after dash", "English - Fluent", "English", "Fluent", 90},
		{"cefr c1 counts as fluent", "Deutsch (C1)", "Deutsch", "Fluent", 90},
		{"intermediate b2", "Français (B2)", "Français", "Intermediate", 70},
		{"basic a2", "Español (A2)", "Español", "Basic", 40},
		{"no level defaults unlabeled", "Portoghese", "Portoghese", "", 60},
		{"case insensitive", "spanish - FLUENT", "spanish", "Fluent", 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseProficiency(tt.entry)
			assert.Equal(t, tt.entry, p.Text)
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantLabel, p.Label)
			assert.Equal(t, tt.wantPct, p.Percentage)
		})
	}
}
