// Package templates renders a resume record through a gallery of visual
// templates. Every template produces a screen preview and an A4 print
// variant from the same view model, so the two are always data-equivalent up
// to the declared print caps.
package templates

import "fmt"

// Variant selects the rendering target.
type Variant string

// Rendering targets.
const (
	Preview Variant = "preview"
	Print   Variant = "print"
)

// Template describes one registered renderer. Every entry maps to a real,
// distinct pair of layouts; there are no placeholder aliases. PrintExperienceCap
// limits how many experience entries the print variant shows (0 = no cap);
// caps always take the first N entries in current list order.
type Template struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Style              string `json:"style"`
	PrintExperienceCap int    `json:"print_experience_cap,omitempty"`
}

// Registry lists the available templates in presentation order.
var Registry = []Template{
	{ID: "minimal", Name: "Minimal Clean", Style: "Simple single column"},
	{ID: "modern", Name: "Modern Dark", Style: "Dark sidebar on the left"},
	{ID: "classic", Name: "Classic Professional", Style: "Accent sidebar on the right"},
	{ID: "executive", Name: "Executive", Style: "Header band and timeline", PrintExperienceCap: 3},
}

// Get returns the template for an ID, falling back to the first registered
// template for unknown IDs rather than failing a render request.
func Get(id string) Template {
	for _, t := range Registry {
		if t.ID == id {
			return t
		}
	}
	return Registry[0]
}

// ErrUnknownVariant indicates a render was asked for something other than
// preview or print.
type ErrUnknownVariant struct {
	Variant Variant
}

func (e *ErrUnknownVariant) Error() string {
	return fmt.Sprintf("unknown render variant: %s", e.Variant)
}
