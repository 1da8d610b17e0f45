package ingestion

import (
	"path/filepath"
	"strings"
)

// FromUpload extracts text from an uploaded file, dispatching on the file
// extension. Supported: .pdf, .txt, .md, .html/.htm. Anything else, or a
// result below MinContentChars, is an UnreadableError.
func FromUpload(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = ExtractPDFText(data)
	case ".txt", ".md":
		text = CleanText(string(data))
	case ".html", ".htm":
		text, err = ExtractHTMLText(string(data))
	default:
		return "", &UnreadableError{Filename: filename, Message: "unsupported file type"}
	}
	if err != nil {
		if ue, ok := err.(*UnreadableError); ok && ue.Filename == "" {
			ue.Filename = filename
		}
		return "", err
	}

	if len(text) < MinContentChars {
		return "", &UnreadableError{Filename: filename, Message: "file appears empty or unreadable"}
	}
	return text, nil
}

// FromText normalizes pasted resume text. Too little content is treated the
// same as an unreadable upload.
func FromText(text string) (string, error) {
	cleaned := CleanText(text)
	if len(cleaned) < MinContentChars {
		return "", &UnreadableError{Filename: "pasted text", Message: "text is too short to describe a resume"}
	}
	return cleaned, nil
}
