package types

import "github.com/go-playground/validator/v10"

// ChatMessage is a single turn of the conversational intake flow.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest represents the body of POST /v1/chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Language string        `json:"language,omitempty"`
}

// ChatResponse is the assistant turn returned by POST /v1/chat.
type ChatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ReorderRequest moves one entry of a resume list next to another. Toggle
// lists (skills, languages, certifications) are keyed by entry name; work
// experience and education are keyed by their synthetic entry ID.
type ReorderRequest struct {
	List    string `json:"list" validate:"required,oneof=skills languages certifications work_experience education"`
	FromKey string `json:"from_key" validate:"required"`
	ToKey   string `json:"to_key" validate:"required"`
}

// ToggleRequest flips the visibility of a single list entry.
type ToggleRequest struct {
	List string `json:"list" validate:"required,oneof=skills languages certifications work_experience education"`
	Key  string `json:"key" validate:"required"`
}

// EditFieldRequest replaces one scalar leaf addressed by a field path such as
// "personal_info.summary" or "work_experience[2].description[0]".
type EditFieldRequest struct {
	Path  string `json:"path" validate:"required"`
	Value string `json:"value"`
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ReorderRequest using the validator.
func (r *ReorderRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ToggleRequest using the validator.
func (r *ToggleRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the EditFieldRequest using the validator.
func (r *EditFieldRequest) Validate() error {
	return validator.New().Struct(r)
}
