// Package extraction turns unstructured resume text into the raw JSON shape
// of a resume record by calling a generative-text capability. Candidate
// models are attempted strictly in priority order; the first success
// terminates the loop. Output quality is never retried, only availability.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/dscirocco/cvarchitect/internal/llm"
	"github.com/dscirocco/cvarchitect/internal/schemas"
)

// Extract runs the structured extraction request and returns the parsed raw
// JSON object, pre-normalization. The map keeps skills/languages/
// certifications in whatever shape the model returned (strings or toggle
// objects); the normalizer resolves that union.
func Extract(ctx context.Context, client llm.Client, rawText, language string) (map[string]any, error) {
	prompt := BuildPrompt(rawText, language)

	var text string
	var lastErr error
	for _, model := range client.Candidates() {
		out, err := client.Generate(ctx, model, prompt)
		if err != nil {
			log.Printf("[EXTRACT] model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(out) == "" {
			log.Printf("[EXTRACT] model %s returned empty output", model)
			lastErr = fmt.Errorf("model %s returned empty output", model)
			continue
		}
		text = out
		break
	}

	if text == "" {
		return nil, &ExtractionError{Message: "no candidate model produced output", Cause: lastErr}
	}

	cleaned := llm.CleanJSONBlock(text)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		log.Printf("[EXTRACT] response is not JSON: %s", cleaned)
		return nil, &SchemaError{Message: "response is not valid JSON", Cause: err}
	}

	if err := schemas.ValidateResume([]byte(cleaned)); err != nil {
		log.Printf("[EXTRACT] response violates resume schema: %s", cleaned)
		return nil, &SchemaError{Message: "response does not match the resume schema", Cause: err}
	}

	return raw, nil
}
