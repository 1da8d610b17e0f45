// Package export serializes a resume record into the downloadable
// formats offered by the editor: JSON, plain text, DOCX and PDF.
package export

import (
	"encoding/json"

	"github.com/dscirocco/cvarchitect/internal/types"
)

// ToJSON returns the record pretty-printed. The output is a verbatim
// snapshot of the document, visibility flags included, so it can be
// re-imported later without loss.
func ToJSON(record *types.ResumeRecord) ([]byte, error) {
	return json.MarshalIndent(record, "", "  ")
}
