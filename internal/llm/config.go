// Package llm provides centralized LLM configuration and client abstractions.
// The extraction and chat flows never talk to a provider SDK directly; they
// go through the Client interface so the candidate model list can be swapped
// without touching callers.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and the ordered list of candidate models. The
// candidates are attempted strictly in order, first success wins; the list is
// the only resilience mechanism (no retry-with-backoff, no parallel fan-out).
type Config struct {
	Provider   Provider
	Candidates []string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini candidate list, highest
// priority first.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:   ProviderGemini,
		Candidates: []string{"gemma-3-27b-it", "gemma-3-12b-it", "gemini-2.5-flash"},
	}
}

// WithCandidates returns a new Config with a replacement candidate list.
// Empty entries are skipped; an entirely empty list keeps the defaults.
func (c *Config) WithCandidates(models []string) *Config {
	cleaned := make([]string, 0, len(models))
	for _, m := range models {
		if m != "" {
			cleaned = append(cleaned, m)
		}
	}
	if len(cleaned) == 0 {
		return c
	}
	return &Config{Provider: c.Provider, Candidates: cleaned}
}
