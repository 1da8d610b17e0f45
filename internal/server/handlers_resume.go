package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dscirocco/cvarchitect/internal/document"
	"github.com/dscirocco/cvarchitect/internal/export"
	"github.com/dscirocco/cvarchitect/internal/normalize"
	"github.com/dscirocco/cvarchitect/internal/templates"
	"github.com/dscirocco/cvarchitect/internal/types"
)

const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// handleGetResume returns the session's current record.
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request, sess *document.Session) {
	s.jsonResponse(w, http.StatusOK, sess.Record())
}

// handleReplaceResume swaps the whole record. The submitted document goes
// through normalization again so a hand-edited JSON import gets the same
// treatment as a fresh extraction.
func (s *Server) handleReplaceResume(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := normalize.FromJSON(data, s.cutoffs)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume document is not valid JSON")
		return
	}
	if !record.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "resume must include a full name")
		return
	}

	sess.Replace(record)
	s.jsonResponse(w, http.StatusOK, sess.Record())
}

// handleReorder moves one list entry next to another.
func (s *Server) handleReorder(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	var req types.ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sess.Reorder(req.List, req.FromKey, req.ToKey); err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Record())
}

// handleToggle flips the visibility of one list entry.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	var req types.ToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sess.ToggleVisibility(req.List, req.Key); err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Record())
}

// handleEditField replaces one scalar field addressed by path.
func (s *Server) handleEditField(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	var req types.EditFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sess.EditField(req.Path, req.Value); err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Record())
}

// handlePreview renders the session's record through a template. Query
// parameters: template (defaults to the first registered one), variant
// (preview or print) and language.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	q := r.URL.Query()

	variant := templates.Preview
	if v := q.Get("variant"); v != "" {
		variant = templates.Variant(v)
	}
	lang := s.language(q.Get("language"))

	html, err := templates.Render(sess.Record(), q.Get("template"), variant, lang, sess.ProfileImage())
	if err != nil {
		s.failure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
}

// handleExport streams the record in the requested format. PDF goes through
// the print template and the headless browser; the other formats are
// produced directly from the record.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, sess *document.Session) {
	format := r.PathValue("format")
	record := sess.Record()

	if format == "pdf" {
		s.exportPDF(w, r, sess, record)
		return
	}

	data, err := export.Bytes(record, format)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=resume.%s", format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) exportPDF(w http.ResponseWriter, r *http.Request, sess *document.Session, record *types.ResumeRecord) {
	q := r.URL.Query()
	lang := s.language(q.Get("language"))

	html, err := templates.Render(record, q.Get("template"), templates.Print, lang, sess.ProfileImage())
	if err != nil {
		s.failure(w, err)
		return
	}

	pdf, err := s.renderer.HTMLToPDF(r.Context(), string(html))
	if err != nil {
		s.failure(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
