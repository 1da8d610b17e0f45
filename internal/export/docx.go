package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dscirocco/cvarchitect/internal/types"
)

// Half-point font sizes for the generated document.
const (
	sizeTitle   = "44"
	sizeHeading = "28"
	sizeBody    = "22"
)

// ToDocx renders the record as a Word document. Layout mirrors the
// plain-text export: centered title and contact line, then one heading
// per non-empty section with hidden entries skipped.
func ToDocx(record *types.ResumeRecord) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()
	pi := record.PersonalInfo

	title := doc.AddParagraph()
	title.AddText(pi.FullName).Size(sizeTitle).Bold()
	title.Justification("center")

	contact := doc.AddParagraph()
	contact.AddText(fmt.Sprintf("%s | %s | %s", pi.Email, pi.Phone, pi.Location)).Size(sizeBody).Bold()
	contact.Justification("center")

	doc.AddParagraph()

	if pi.Summary != "" {
		addHeading(doc, "Professional Summary")
		doc.AddParagraph().AddText(pi.Summary).Size(sizeBody)
		doc.AddParagraph()
	}

	if exps := visibleExperience(record); len(exps) > 0 {
		addHeading(doc, "Work Experience")
		for _, exp := range exps {
			line := doc.AddParagraph()
			line.AddText(exp.Title).Size(sizeBody).Bold()
			line.AddText(" at " + exp.Company).Size(sizeBody).Italic()

			dates := doc.AddParagraph()
			dates.AddText(fmt.Sprintf("%s - %s", exp.StartDate, orPresent(exp.EndDate))).Size(sizeBody)
			dates.Justification("end")

			for _, d := range exp.Description {
				doc.AddParagraph().AddText("    • " + d).Size(sizeBody)
			}
			doc.AddParagraph()
		}
	}

	if edus := visibleEducation(record); len(edus) > 0 {
		addHeading(doc, "Education")
		for _, edu := range edus {
			line := doc.AddParagraph()
			line.AddText(edu.School).Size(sizeBody).Bold()
			line.AddText(" - " + edu.Degree).Size(sizeBody)
			doc.AddParagraph().AddText(fmt.Sprintf("%s - %s", edu.StartDate, orPresent(edu.EndDate))).Size(sizeBody)
			doc.AddParagraph()
		}
	}

	if skills := toggleNames(record.VisibleSkills()); len(skills) > 0 {
		addHeading(doc, "Skills")
		doc.AddParagraph().AddText(strings.Join(skills, ", ")).Size(sizeBody)
	}

	if langs := toggleNames(record.VisibleLanguages()); len(langs) > 0 {
		addHeading(doc, "Languages")
		doc.AddParagraph().AddText(strings.Join(langs, ", ")).Size(sizeBody)
	}

	if certs := toggleNames(record.VisibleCertifications()); len(certs) > 0 {
		addHeading(doc, "Certifications")
		for _, c := range certs {
			doc.AddParagraph().AddText("• " + c).Size(sizeBody)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addHeading(doc *docx.Docx, text string) {
	p := doc.AddParagraph()
	p.AddText(text).Size(sizeHeading).Bold().Color("2F5496")
}
