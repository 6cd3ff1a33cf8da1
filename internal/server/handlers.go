package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/rolecolor/internal/rewriting"
)

// ScoreRequest is the payload for POST /score and POST /rewrite.
type ScoreRequest struct {
	Text  string `json:"text" validate:"required"`
	Title string `json:"title,omitempty" validate:"omitempty,max=120"`
	TopK  int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=50"`
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// handleScore scores resume text and returns the full report.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID(r)

	req, err := s.decodeScoreRequest(r)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	report := s.scorer.Report(req.Text, req.TopK)
	s.writeJSON(w, requestID, http.StatusOK, report)
}

// handleRewrite scores resume text, then asks the LLM collaborator to
// rewrite the summary for the dominant category.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID(r)

	req, err := s.decodeScoreRequest(r)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	if s.apiKey == "" {
		s.writeError(w, requestID, &ErrRewriteUnavailable{Message: "no API key configured"})
		return
	}

	report := s.scorer.Report(req.Text, req.TopK)

	title := req.Title
	if title == "" {
		title = s.defaultTitle
	}

	summary, err := rewriting.RewriteSummaryWithConfig(r.Context(), s.llmConfig, req.Text, report.Dominant, title, s.apiKey)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}
	report.Summary = summary

	s.writeJSON(w, requestID, http.StatusOK, report)
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, newRequestID(r), http.StatusOK, map[string]string{"status": "ok"})
}

// decodeScoreRequest parses and validates the request body.
func (s *Server) decodeScoreRequest(r *http.Request) (*ScoreRequest, error) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}

	if err := s.validate.Struct(&req); err != nil {
		var invalidErrs validator.ValidationErrors
		if errors.As(err, &invalidErrs) && len(invalidErrs) > 0 {
			first := invalidErrs[0]
			return nil, &ErrValidation{Field: first.Field(), Message: "failed " + first.Tag() + " validation"}
		}
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}

	return &req, nil
}

// newRequestID takes the caller-supplied X-Request-ID or mints a new UUID.
func newRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

//nolint:errcheck // response writes; nothing to do on failure
func (s *Server) writeJSON(w http.ResponseWriter, requestID string, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request %s failed: %v", requestID, err)
	}
	s.writeJSON(w, requestID, status, errorResponse{
		Error:     err.Error(),
		RequestID: requestID,
	})
}
