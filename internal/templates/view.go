package templates

import (
	"html/template"

	"github.com/dscirocco/cvarchitect/internal/i18n"
	"github.com/dscirocco/cvarchitect/internal/types"
)

// ExperienceView is one visible work experience entry, ready to render.
type ExperienceView struct {
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	Description []string
}

// EducationView is one visible education entry, ready to render.
type EducationView struct {
	Degree    string
	School    string
	Location  string
	StartDate string
	EndDate   string
}

// View is the single view model every template renders from. It contains
// only visible entries, in current list order, with headings already
// resolved for the selected display language. A record missing its full name
// renders with the field blank; building a view never fails.
type View struct {
	Labels i18n.Labels

	FullName     string
	Email        string
	Phone        string
	Location     string
	LinkedinURL  string
	PortfolioURL string
	Summary      string

	// ProfileImage is a data URL, or empty when no photo was uploaded.
	// Typed template.URL so the data: scheme survives HTML escaping.
	ProfileImage template.URL

	Experience     []ExperienceView
	Education      []EducationView
	Skills         []string
	Languages      []i18n.Proficiency
	Certifications []string
}

// BuildView filters the record down to what the given template and variant
// actually show. Print caps are applied here so preview and print stay
// data-equivalent apart from the caps declared in the registry.
func BuildView(record *types.ResumeRecord, tpl Template, variant Variant, lang i18n.Language, profileImage string) View {
	view := View{
		Labels:       i18n.LabelsFor(lang),
		ProfileImage: template.URL(profileImage),
	}
	if record == nil {
		return view
	}

	view.FullName = record.PersonalInfo.FullName
	view.Email = record.PersonalInfo.Email
	view.Phone = record.PersonalInfo.Phone
	view.Location = record.PersonalInfo.Location
	view.LinkedinURL = record.PersonalInfo.LinkedinURL
	view.PortfolioURL = record.PersonalInfo.PortfolioURL
	view.Summary = record.PersonalInfo.Summary

	for _, exp := range record.WorkExperience {
		if !exp.Visible {
			continue
		}
		view.Experience = append(view.Experience, ExperienceView{
			Title:       exp.Title,
			Company:     exp.Company,
			Location:    exp.Location,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			Description: exp.Description,
		})
	}
	if variant == Print && tpl.PrintExperienceCap > 0 && len(view.Experience) > tpl.PrintExperienceCap {
		view.Experience = view.Experience[:tpl.PrintExperienceCap]
	}

	for _, edu := range record.Education {
		if !edu.Visible {
			continue
		}
		view.Education = append(view.Education, EducationView{
			Degree:    edu.Degree,
			School:    edu.School,
			Location:  edu.Location,
			StartDate: edu.StartDate,
			EndDate:   edu.EndDate,
		})
	}

	for _, s := range record.VisibleSkills() {
		view.Skills = append(view.Skills, s.Name)
	}
	for _, l := range record.VisibleLanguages() {
		view.Languages = append(view.Languages, i18n.ParseProficiency(l.Name))
	}
	for _, c := range record.VisibleCertifications() {
		view.Certifications = append(view.Certifications, c.Name)
	}

	return view
}
