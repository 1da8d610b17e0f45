// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dscirocco/cvarchitect/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersonalInfo outputs the extracted identity fields.
func (p *Printer) PrintPersonalInfo(record *types.ResumeRecord) {
	if record == nil {
		return
	}
	pi := record.PersonalInfo

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", pi.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", pi.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", pi.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s", pi.Location))
	if pi.Summary != "" {
		summary := pi.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n\n%s", summary))
	}

	p.printBox("PERSONAL INFO", sb.String())
}

// PrintExperience outputs the extracted work history.
func (p *Printer) PrintExperience(record *types.ResumeRecord) {
	if record == nil || len(record.WorkExperience) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d positions:\n\n", len(record.WorkExperience)))

	count := min(len(record.WorkExperience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := record.WorkExperience[i]
		sb.WriteString(fmt.Sprintf("• %s\n", exp.Title))
		sb.WriteString(fmt.Sprintf("  %s  %s - %s\n", exp.Company, exp.StartDate, exp.EndDate))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(record.WorkExperience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(record.WorkExperience)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintToggleLists outputs the skill, language and certification lists with
// their default visibility.
func (p *Printer) PrintToggleLists(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(formatToggleSection("Skills", record.Skills))
	sb.WriteString(formatToggleSection("Languages", record.Languages))
	sb.WriteString(formatToggleSection("Certifications", record.Certifications))

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		return
	}
	p.printBox("LISTS", content)
}

func formatToggleSection(title string, entries []types.LabeledToggle) string {
	if len(entries) == 0 {
		return ""
	}

	visible := 0
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Visible {
			visible++
		}
		names = append(names, e.Name)
	}

	joined := strings.Join(names, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return fmt.Sprintf("%s (%d, %d visible):\n  %s\n", title, len(entries), visible, joined)
}

// PrintSummary outputs one line per section with entry counts, used after a
// parse completes.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(record *types.ResumeRecord) {
	if record == nil {
		return
	}
	fmt.Fprintf(p.out, "Parsed: %d positions, %d schools, %d skills, %d languages, %d certifications\n",
		len(record.WorkExperience), len(record.Education),
		len(record.Skills), len(record.Languages), len(record.Certifications))
}
