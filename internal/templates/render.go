package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/dscirocco/cvarchitect/internal/i18n"
	"github.com/dscirocco/cvarchitect/internal/types"
)

//go:embed layouts/*.gohtml
var layoutFiles embed.FS

var layouts = template.Must(template.ParseFS(layoutFiles, "layouts/*.gohtml"))

// Render produces the HTML for one template/variant pair. The preview
// variant is a responsive page for on-screen display; the print variant is a
// fixed A4 page meant to be fed to the PDF renderer. Unknown template IDs
// fall back to the default template; an unknown variant is an error.
func Render(record *types.ResumeRecord, id string, variant Variant, lang i18n.Language, profileImage string) ([]byte, error) {
	if variant != Preview && variant != Print {
		return nil, &ErrUnknownVariant{Variant: variant}
	}

	tpl := Get(id)
	view := BuildView(record, tpl, variant, lang, profileImage)

	name := fmt.Sprintf("%s_%s.gohtml", tpl.ID, variant)
	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, name, view); err != nil {
		return nil, fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
