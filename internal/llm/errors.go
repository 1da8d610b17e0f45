package llm

import "fmt"

// ProviderError represents a failure of one candidate model. The fallback
// loop collects these and surfaces the last one when every candidate fails.
type ProviderError struct {
	Model   string
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model %s: %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("model %s: %s", e.Model, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
