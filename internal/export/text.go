package export

import (
	"fmt"
	"strings"

	"github.com/dscirocco/cvarchitect/internal/types"
)

const sectionRule = "================="

// ToText renders the record as a plain-text resume. Section order is
// fixed; hidden entries are skipped; empty sections are omitted.
func ToText(record *types.ResumeRecord) []byte {
	var b strings.Builder

	pi := record.PersonalInfo
	b.WriteString(pi.FullName + "\n")
	fmt.Fprintf(&b, "%s | %s | %s\n", pi.Email, pi.Phone, pi.Location)
	if pi.LinkedinURL != "" {
		b.WriteString("LinkedIn Profile\n")
	}
	b.WriteString("\nAbout:\n")
	b.WriteString(pi.Summary + "\n\n")

	if exps := visibleExperience(record); len(exps) > 0 {
		b.WriteString("WORK EXPERIENCE\n" + sectionRule + "\n")
		for _, exp := range exps {
			fmt.Fprintf(&b, "%s at %s\n", exp.Title, exp.Company)
			fmt.Fprintf(&b, "%s - %s\n", exp.StartDate, orPresent(exp.EndDate))
			for _, d := range exp.Description {
				b.WriteString(" - " + d + "\n")
			}
			b.WriteString("\n")
		}
	}

	if edus := visibleEducation(record); len(edus) > 0 {
		b.WriteString("EDUCATION\n" + sectionRule + "\n")
		for _, edu := range edus {
			fmt.Fprintf(&b, "%s - %s\n", edu.School, edu.Degree)
			fmt.Fprintf(&b, "%s - %s\n", edu.StartDate, orPresent(edu.EndDate))
			b.WriteString("\n")
		}
	}

	if skills := toggleNames(record.VisibleSkills()); len(skills) > 0 {
		b.WriteString("SKILLS\n" + sectionRule + "\n")
		b.WriteString(strings.Join(skills, ", ") + "\n\n")
	}

	if langs := toggleNames(record.VisibleLanguages()); len(langs) > 0 {
		b.WriteString("LANGUAGES\n" + sectionRule + "\n")
		b.WriteString(strings.Join(langs, ", ") + "\n\n")
	}

	if certs := toggleNames(record.VisibleCertifications()); len(certs) > 0 {
		b.WriteString("CERTIFICATIONS\n" + sectionRule + "\n")
		b.WriteString(strings.Join(certs, "\n") + "\n\n")
	}

	return []byte(b.String())
}

func orPresent(endDate string) string {
	if endDate == "" {
		return "Present"
	}
	return endDate
}

func visibleExperience(record *types.ResumeRecord) []types.WorkExperience {
	var out []types.WorkExperience
	for _, exp := range record.WorkExperience {
		if exp.Visible {
			out = append(out, exp)
		}
	}
	return out
}

func toggleNames(entries []types.LabeledToggle) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func visibleEducation(record *types.ResumeRecord) []types.Education {
	var out []types.Education
	for _, edu := range record.Education {
		if edu.Visible {
			out = append(out, edu)
		}
	}
	return out
}
