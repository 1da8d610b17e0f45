// Package normalize converts the raw JSON produced by the extraction step
// into the canonical resume record. Skills, languages and certifications can
// arrive as plain strings (fresh extraction) or as toggle objects (JSON
// re-import); the union is resolved here and never carried further.
package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/dscirocco/cvarchitect/internal/types"
)

// Cutoffs holds the per-list count of leading entries marked visible by
// default. The values seed the relevance ranking returned by extraction:
// entries past the cutoff exist but start hidden. Product policy, so
// configuration rather than constants.
type Cutoffs struct {
	Skills         int `json:"skills"`
	Certifications int `json:"certifications"`
}

// DefaultCutoffs returns the stock visibility cutoffs.
func DefaultCutoffs() Cutoffs {
	return Cutoffs{Skills: 5, Certifications: 3}
}

// SchemaError indicates the value handed to the normalizer was not a JSON
// object at all (for example, the extraction step returned prose).
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("normalize: %s", e.Message)
}

// FromJSON parses raw JSON bytes and normalizes them into a resume record.
func FromJSON(data []byte, cutoffs Cutoffs) (*types.ResumeRecord, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &SchemaError{Message: "input is not valid JSON"}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Message: "input is not a JSON object"}
	}
	return Record(obj, cutoffs)
}

// Record normalizes a parsed JSON object of unknown shape into the canonical
// record. Missing arrays become empty slices, missing scalars become empty
// strings, so downstream rendering never trips on absent fields. The
// operation is idempotent: normalizing an already-normalized record is a
// no-op.
func Record(raw map[string]any, cutoffs Cutoffs) (*types.ResumeRecord, error) {
	if raw == nil {
		return nil, &SchemaError{Message: "input is not a JSON object"}
	}

	rec := &types.ResumeRecord{
		PersonalInfo:   personalInfo(raw["personal_info"]),
		WorkExperience: workExperience(raw["work_experience"]),
		Education:      education(raw["education"]),
		Skills:         toggleList(raw["skills"], cutoffs.Skills),
		Languages:      toggleList(raw["languages"], -1),
		Certifications: toggleList(raw["certifications"], cutoffs.Certifications),
	}
	rec.EnsureIDs()
	return rec, nil
}

func personalInfo(v any) types.PersonalInfo {
	obj, _ := v.(map[string]any)
	return types.PersonalInfo{
		FullName:     str(obj, "fullName"),
		Email:        str(obj, "email"),
		Phone:        str(obj, "phone"),
		Location:     str(obj, "location"),
		LinkedinURL:  str(obj, "linkedinUrl"),
		PortfolioURL: str(obj, "portfolioUrl"),
		Summary:      str(obj, "summary"),
	}
}

func workExperience(v any) []types.WorkExperience {
	arr, _ := v.([]any)
	out := make([]types.WorkExperience, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, types.WorkExperience{
			ID:          str(obj, "id"),
			Title:       str(obj, "title"),
			Company:     str(obj, "company"),
			Location:    str(obj, "location"),
			StartDate:   str(obj, "startDate"),
			EndDate:     str(obj, "endDate"),
			Description: strSlice(obj["description"]),
			Visible:     boolOr(obj, "visible", true),
		})
	}
	return out
}

func education(v any) []types.Education {
	arr, _ := v.([]any)
	out := make([]types.Education, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, types.Education{
			ID:        str(obj, "id"),
			Degree:    str(obj, "degree"),
			School:    str(obj, "school"),
			Location:  str(obj, "location"),
			StartDate: str(obj, "startDate"),
			EndDate:   str(obj, "endDate"),
			Visible:   boolOr(obj, "visible", true),
		})
	}
	return out
}

// toggleList resolves the string-or-object union into LabeledToggle entries.
// Plain strings get visible = index < cutoff (cutoff < 0 means always
// visible); objects pass through with their existing visibility. Duplicate
// names are disambiguated with a numeric suffix because the name is the
// identity key for reorder and toggle.
func toggleList(v any, cutoff int) []types.LabeledToggle {
	arr, _ := v.([]any)
	out := make([]types.LabeledToggle, 0, len(arr))
	seen := make(map[string]int, len(arr))

	for i, item := range arr {
		var entry types.LabeledToggle
		switch val := item.(type) {
		case string:
			entry = types.LabeledToggle{Name: val, Visible: cutoff < 0 || i < cutoff}
		case map[string]any:
			name, ok := val["name"].(string)
			if !ok {
				continue
			}
			entry = types.LabeledToggle{Name: name, Visible: boolOr(val, "visible", true)}
		default:
			continue
		}
		if entry.Name == "" {
			continue
		}
		if n := seen[entry.Name]; n > 0 {
			// The suffixed candidate itself may already be taken, either by
			// an earlier duplicate or by an input name that arrived
			// pre-suffixed. Keep counting until the name is free.
			base := entry.Name
			for {
				n++
				entry.Name = fmt.Sprintf("%s (%d)", base, n)
				if seen[entry.Name] == 0 {
					break
				}
			}
			seen[base] = n
		}
		seen[entry.Name] = 1
		out = append(out, entry)
	}
	return out
}

func str(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	s, _ := obj[key].(string)
	return s
}

func strSlice(v any) []string {
	arr, _ := v.([]any)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func boolOr(obj map[string]any, key string, def bool) bool {
	if v, ok := obj[key].(bool); ok {
		return v
	}
	return def
}
