package server

import (
	"io"
	"log"
	"net/http"

	"github.com/dscirocco/cvarchitect/internal/chat"
	"github.com/dscirocco/cvarchitect/internal/extraction"
	"github.com/dscirocco/cvarchitect/internal/i18n"
	"github.com/dscirocco/cvarchitect/internal/ingestion"
	"github.com/dscirocco/cvarchitect/internal/normalize"
	"github.com/dscirocco/cvarchitect/internal/templates"
	"github.com/dscirocco/cvarchitect/internal/types"
)

// maxUploadBytes caps multipart bodies; LinkedIn PDF exports are well under
// this even with an embedded photo.
const maxUploadBytes = 20 << 20

// parseCVResponse is the body returned by POST /v1/parse-cv.
type parseCVResponse struct {
	Token  string              `json:"token"`
	Resume *types.ResumeRecord `json:"resume"`
}

// handleParseCV runs the full ingestion pipeline: read the source (file,
// URL or pasted text), extract structured data through the LLM, normalize
// it and store it in an editing session. When the request carries a valid
// session token the session's record is regenerated in place instead,
// which is how a language switch re-runs extraction.
func (s *Server) handleParseCV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	rawText, err := s.sourceText(r)
	if err != nil {
		s.failure(w, err)
		return
	}

	language := s.language(r.FormValue("language"))
	photo := r.FormValue("photo")

	// Re-generation path: an existing session re-parses the same source in
	// a new language. A stale result never overwrites a newer one.
	if sess, sessErr := s.sessionFromRequest(r); sessErr == nil {
		seq := sess.BeginRegeneration()
		record, genErr := s.generate(r, rawText, language)
		if genErr != nil {
			s.failure(w, genErr)
			return
		}
		if !sess.CommitRegeneration(record, seq) {
			log.Printf("[SERVER] dropped stale regeneration for session %s", sess.ID)
		}
		if photo != "" {
			sess.SetProfileImage(photo)
		}
		s.jsonResponse(w, http.StatusOK, parseCVResponse{Token: bearerToken(r), Resume: sess.Record()})
		return
	}

	record, err := s.generate(r, rawText, language)
	if err != nil {
		s.failure(w, err)
		return
	}

	sess := s.store.Create(record)
	if photo != "" {
		sess.SetProfileImage(photo)
	}

	token, err := s.tokens.Issue(sess.ID)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, parseCVResponse{Token: token, Resume: sess.Record()})
}

// generate runs extraction and normalization for one source text.
func (s *Server) generate(r *http.Request, rawText string, language i18n.Language) (*types.ResumeRecord, error) {
	raw, err := extraction.Extract(r.Context(), s.llmClient, rawText, string(language))
	if err != nil {
		return nil, err
	}
	return normalize.Record(raw, s.cutoffs)
}

// sourceText resolves the resume source from the multipart form. Priority:
// uploaded file, then profile URL, then pasted text.
func (s *Server) sourceText(r *http.Request) (string, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if readErr != nil {
			return "", &ingestion.UnreadableError{Filename: header.Filename, Message: "failed to read upload", Cause: readErr}
		}
		return ingestion.FromUpload(header.Filename, data)
	}

	if rawURL := r.FormValue("url"); rawURL != "" {
		return ingestion.FromURL(r.Context(), rawURL, s.cfg.UseBrowser)
	}

	if text := r.FormValue("text"); text != "" {
		return ingestion.FromText(text)
	}

	return "", &ingestion.UnreadableError{Message: "no file, url or text provided"}
}

// language resolves the requested output language, falling back to the
// configured default and then to the stock default.
func (s *Server) language(raw string) i18n.Language {
	if raw == "" {
		raw = s.cfg.DefaultLanguage
	}
	return i18n.Parse(raw)
}

// handleChat answers one turn of the guided interview.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid message history")
		return
	}

	reply, err := chat.Respond(r.Context(), s.llmClient, req.Messages, req.Language)
	if err != nil {
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{Role: "assistant", Content: reply})
}

// handleTemplates lists the template gallery.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates.Registry})
}
