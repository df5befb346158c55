package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "modalcopy/internal/common/errors"
	"modalcopy/internal/templates"

	generatecopy "modalcopy/internal/services/copywriting/generate-copy"
	aggregatechecklist "modalcopy/internal/services/design/aggregate-checklist"
	describescreen "modalcopy/internal/services/design/describe-screen"
	browsecatalog "modalcopy/internal/services/reference/browse-catalog"
	checkspelling "modalcopy/internal/services/spelling/check-spelling"
	proxyspeller "modalcopy/internal/services/spelling/proxy-speller"
)

// operationFunc serves one registry operation. body is the schema-validated request body.
type operationFunc func(w http.ResponseWriter, r *http.Request, body []byte) error

// operation applies the registry timeout and input schema of id before calling fn.
func (s *Server) operation(id string, fn operationFunc) http.HandlerFunc {
	timeout := s.registry.TimeoutFor(id, defaultOperationTimeout)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		r = r.WithContext(ctx)

		var body []byte
		if r.Method == http.MethodPost {
			var err error
			body, err = s.readBody(id, r)
			if err != nil {
				s.errors.HandleRequestError(w, r, err)
				return
			}
		}

		if err := fn(w, r, body); err != nil {
			s.errors.HandleRequestError(w, r, err)
		}
	}
}

func (s *Server) readBody(id string, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("read body: %v", err))
	}
	if len(body) > maxBodyBytes {
		return nil, apperrors.NewInvalidRequestError(fmt.Sprintf("body exceeds %d bytes", maxBodyBytes))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	result, err := s.validator.ValidateBytes(id, body)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("request body is not valid JSON")
	}
	if !result.Valid {
		return nil, apperrors.NewSchemaValidationFailedError(id, result.Messages())
	}
	return body, nil
}

func decode(body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.NewInvalidRequestError(err.Error())
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ==========================
// Probes
// ==========================

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	if s.redis == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "redis": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.redis.Ping(ctx); err != nil {
		s.logger.Warn("readiness check failed", map[string]interface{}{"error": err.Error()})
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "redis": "down"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "redis": "up"})
}

// ==========================
// Copywriting
// ==========================

type categoriesResponse struct {
	Categories []templates.CategoryInfo `json:"categories"`
	Tones      []templates.Tone         `json:"tones"`
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request, _ []byte) error {
	writeJSON(w, http.StatusOK, categoriesResponse{
		Categories: s.templates.Categories(),
		Tones:      templates.Tones,
	})
	return nil
}

func (s *Server) generateCopy(w http.ResponseWriter, r *http.Request, body []byte) error {
	var input generatecopy.Input
	if err := decode(body, &input); err != nil {
		return err
	}
	if err := generatecopy.Validate(&input); err != nil {
		return err
	}

	out, err := s.generate.Execute(r.Context(), &input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

// ==========================
// Design
// ==========================

func (s *Server) listScreenTypes(w http.ResponseWriter, r *http.Request, _ []byte) error {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"screenTypes": s.catalog.ScreenNames(),
		"screens":     s.catalog.Screens(),
	})
	return nil
}

func (s *Server) describeScreen(w http.ResponseWriter, r *http.Request, body []byte) error {
	var input describescreen.Input
	if err := decode(body, &input); err != nil {
		return err
	}

	out, err := s.describe.Execute(r.Context(), &input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (s *Server) listChecklist(w http.ResponseWriter, r *http.Request, _ []byte) error {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": s.catalog.Checklist(),
	})
	return nil
}

func (s *Server) aggregateChecklist(w http.ResponseWriter, r *http.Request, body []byte) error {
	var input aggregatechecklist.Input
	if err := decode(body, &input); err != nil {
		return err
	}

	out, err := s.aggregate.Execute(r.Context(), &input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

// ==========================
// Spelling
// ==========================

func (s *Server) spellCheck(w http.ResponseWriter, r *http.Request, body []byte) error {
	var input proxyspeller.Input
	if err := decode(body, &input); err != nil {
		return err
	}

	out, err := s.proxy.Execute(r.Context(), &input)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

type proofreadRequest struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

type proofreadResponse struct {
	SessionID string `json:"sessionId"`
	RequestID uint64 `json:"requestId"`
	*checkspelling.Output
	Segments []checkspelling.Segment `json:"segments"`
}

func (s *Server) proofread(w http.ResponseWriter, r *http.Request, body []byte) error {
	var req proofreadRequest
	if err := decode(body, &req); err != nil {
		return err
	}

	sessionID, session := s.sessions.Get(req.SessionID)
	id := session.Begin()

	out, err := s.checker.Execute(r.Context(), &checkspelling.Input{Text: req.Text})
	if err != nil {
		return err
	}
	if !session.Commit(id, out) {
		return apperrors.NewStaleRequestError(id, session.Latest())
	}

	writeJSON(w, http.StatusOK, proofreadResponse{
		SessionID: sessionID,
		RequestID: id,
		Output:    out,
		Segments:  checkspelling.Align(req.Text, out.Checked, out.Errors),
	})
	return nil
}

type applyRequest struct {
	Text       string                   `json:"text"`
	Error      checkspelling.SpellError `json:"error"`
	Suggestion string                   `json:"suggestion"`
}

func (s *Server) applySuggestion(w http.ResponseWriter, r *http.Request, body []byte) error {
	var req applyRequest
	if err := decode(body, &req); err != nil {
		return err
	}

	text, err := checkspelling.ApplySuggestion(req.Text, req.Error, req.Suggestion)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
	return nil
}

// ==========================
// Reference
// ==========================

func (s *Server) browseSymbols(w http.ResponseWriter, r *http.Request, _ []byte) error {
	out, err := s.browse.Symbols(r.Context(), &browsecatalog.Input{Filter: r.URL.Query().Get("category")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (s *Server) browseTips(w http.ResponseWriter, r *http.Request, _ []byte) error {
	out, err := s.browse.Tips(r.Context(), &browsecatalog.Input{Filter: r.URL.Query().Get("process")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}

func (s *Server) browseTools(w http.ResponseWriter, r *http.Request, _ []byte) error {
	out, err := s.browse.Tools(r.Context(), &browsecatalog.Input{Filter: r.URL.Query().Get("category")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, out)
	return nil
}
