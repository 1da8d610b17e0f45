package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ChatTurn is a provider-neutral conversation turn. Role is "user" or
// "model"; callers are responsible for mapping their own role names.
type ChatTurn struct {
	Role string
	Text string
}

// Client is an abstraction over LLM providers.
type Client interface {
	// Generate generates text content using the named model
	Generate(ctx context.Context, model, prompt string) (string, error)
	// GenerateChat continues a conversation using the named model. The final
	// turn of history is the message being answered.
	GenerateChat(ctx context.Context, model string, history []ChatTurn) (string, error)
	// Candidates returns the ordered fallback model list
	Candidates() []string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate generates text content using the named model.
func (c *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		return "", &ProviderError{Model: model, Message: "no model name given"}
	}

	m := c.client.GenerativeModel(model)
	m.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ProviderError{Model: model, Message: "generate content", Cause: err}
	}

	return extractTextFromResponse(model, resp)
}

// GenerateChat continues a conversation using the named model. All turns but
// the last become session history; the last turn is sent as the message.
func (c *GeminiClient) GenerateChat(ctx context.Context, model string, history []ChatTurn) (string, error) {
	if len(history) == 0 {
		return "", &ProviderError{Model: model, Message: "empty chat history"}
	}

	m := c.client.GenerativeModel(model)

	session := m.StartChat()
	session.History = make([]*genai.Content, 0, len(history)-1)
	for _, turn := range history[:len(history)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	last := history[len(history)-1]
	resp, err := session.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", &ProviderError{Model: model, Message: "send chat message", Cause: err}
	}

	return extractTextFromResponse(model, resp)
}

// Candidates returns the ordered fallback model list.
func (c *GeminiClient) Candidates() []string {
	return c.config.Candidates
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(model string, resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &ProviderError{Model: model, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ProviderError{Model: model, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ProviderError{Model: model, Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
