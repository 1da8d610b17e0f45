package ingestion

import "fmt"

// MinContentChars is the minimum extracted text length considered usable.
// Below it the upload is reported as unreadable rather than sent to the
// extraction step, which would only hallucinate on an empty input.
const MinContentChars = 100

// UnreadableError indicates the uploaded file was of an unsupported type or
// produced too little text to work with. It maps to a specific "file appears
// empty or unreadable" user message, distinct from generic extraction
// failure.
type UnreadableError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *UnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unreadable source %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("unreadable source %s: %s", e.Filename, e.Message)
}

func (e *UnreadableError) Unwrap() error {
	return e.Cause
}
