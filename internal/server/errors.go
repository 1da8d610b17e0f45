package server

import (
	"errors"
	"net/http"

	"github.com/dscirocco/cvarchitect/internal/chat"
	"github.com/dscirocco/cvarchitect/internal/document"
	"github.com/dscirocco/cvarchitect/internal/extraction"
	"github.com/dscirocco/cvarchitect/internal/ingestion"
	"github.com/dscirocco/cvarchitect/internal/llm"
	"github.com/dscirocco/cvarchitect/internal/normalize"
	"github.com/dscirocco/cvarchitect/internal/templates"
)

// Generic message returned for provider-side failures. Exposing raw model
// errors to the client would leak prompt internals and is useless to the
// user anyway.
const extractionFailedMessage = "The document could not be generated. Please try again."

// HTTPStatus returns the status code for an error. Upstream LLM failures map
// to 502, unreadable uploads to 422, bad edit requests to 400 and unknown
// sessions to 401.
func HTTPStatus(err error) int {
	var (
		unreadable *ingestion.UnreadableError
		extractErr *extraction.ExtractionError
		schemaErr  *extraction.SchemaError
		normErr    *normalize.SchemaError
		chatErr    *chat.ChatError
		provErr    *llm.ProviderError
		notFound   *document.ErrSessionNotFound
		pathErr    *document.PathError
		keyErr     *document.KeyError
		listErr    *document.ListError
		variantErr *templates.ErrUnknownVariant
	)

	switch {
	case errors.As(err, &unreadable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &extractErr), errors.As(err, &schemaErr),
		errors.As(err, &normErr), errors.As(err, &chatErr), errors.As(err, &provErr):
		return http.StatusBadGateway
	case errors.As(err, &notFound):
		return http.StatusUnauthorized
	case errors.As(err, &pathErr), errors.As(err, &keyErr),
		errors.As(err, &listErr), errors.As(err, &variantErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage returns the message sent to the client for an error.
// Detail is preserved only where it is actionable by the user.
func clientMessage(err error) string {
	switch HTTPStatus(err) {
	case http.StatusBadGateway:
		return extractionFailedMessage
	case http.StatusUnauthorized:
		return "invalid or expired session"
	case http.StatusInternalServerError:
		return "internal server error"
	default:
		return err.Error()
	}
}
