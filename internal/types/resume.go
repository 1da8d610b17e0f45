// Package types provides type definitions for structured data used throughout the cvarchitect system.
package types

import "github.com/google/uuid"

// PersonalInfo holds the header fields of a resume. Only FullName is required
// for the record to be considered valid; everything else may be empty while
// the user is still editing.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	PortfolioURL string `json:"portfolioUrl,omitempty"`
	Summary      string `json:"summary"`
}

// WorkExperience is one position. Description entries are STAR-style bullet
// points. ID is a synthetic identifier minted at normalization time; the
// editor addresses experience entries by ID, never by slice index.
type WorkExperience struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
	Visible     bool     `json:"visible"`
}

// Education is one degree entry.
type Education struct {
	ID        string `json:"id,omitempty"`
	Degree    string `json:"degree"`
	School    string `json:"school"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Visible   bool   `json:"visible"`
}

// LabeledToggle is a named, reorderable, user-toggleable list entry used for
// skills, languages and certifications. Name doubles as the identity key for
// reorder and toggle operations, so it is unique within its containing list.
type LabeledToggle struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// ResumeRecord is the canonical resume document held for one editing session.
// It is created by normalization, replaced wholesale on re-generation, and
// mutated in place by editor actions. There is no persistence behind it.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Skills         []LabeledToggle  `json:"skills"`
	Languages      []LabeledToggle  `json:"languages"`
	Certifications []LabeledToggle  `json:"certifications,omitempty"`
}

// Valid reports whether the record meets the minimal invariant for rendering
// a non-blank document. Templates still render invalid records, with the
// missing fields blank, because interactive editing produces transient
// partial states.
func (r *ResumeRecord) Valid() bool {
	return r != nil && r.PersonalInfo.FullName != ""
}

// EnsureIDs mints a synthetic ID for every work experience and education
// entry that does not already carry one. Existing IDs are never rewritten so
// that normalization stays idempotent across JSON round-trips.
func (r *ResumeRecord) EnsureIDs() {
	for i := range r.WorkExperience {
		if r.WorkExperience[i].ID == "" {
			r.WorkExperience[i].ID = uuid.NewString()
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = uuid.NewString()
		}
	}
}

// VisibleSkills returns the skills marked visible, in current list order.
func (r *ResumeRecord) VisibleSkills() []LabeledToggle { return visibleOnly(r.Skills) }

// VisibleLanguages returns the languages marked visible, in current list order.
func (r *ResumeRecord) VisibleLanguages() []LabeledToggle { return visibleOnly(r.Languages) }

// VisibleCertifications returns the certifications marked visible, in current list order.
func (r *ResumeRecord) VisibleCertifications() []LabeledToggle { return visibleOnly(r.Certifications) }

func visibleOnly(entries []LabeledToggle) []LabeledToggle {
	out := make([]LabeledToggle, 0, len(entries))
	for _, e := range entries {
		if e.Visible {
			out = append(out, e)
		}
	}
	return out
}
