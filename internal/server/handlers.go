package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/reddit-wordcloud/internal/form"
	"github.com/jonathan/reddit-wordcloud/internal/linkcheck"
	"github.com/jonathan/reddit-wordcloud/internal/schemas"
	"github.com/jonathan/reddit-wordcloud/internal/types"
	"go.uber.org/zap"
)

// maxRequestBytes caps submission request bodies.
const maxRequestBytes = 1 << 20

// submissionResponse is the JSON body for POST /api/submissions.
type submissionResponse struct {
	ResultID   string   `json:"result_id"`
	Words      []string `json:"words"`
	Degraded   bool     `json:"degraded"`
	Reason     string   `json:"reason,omitempty"`
	NavigateTo string   `json:"navigate_to,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// handleIndex renders the empty link form.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderPage(w, http.StatusOK, "index", indexPage{Placeholder: LinkPlaceholder})
}

// handleSubmitForm handles a browser form post and redirects to the result page.
func (s *Server) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, "index", indexPage{
			Placeholder: LinkPlaceholder,
			FieldError:  linkcheck.InvalidLinkMessage,
		})
		return
	}

	raw := r.PostFormValue("link")
	nav := &form.PathRecorder{}
	sub := s.form.Submit(r.Context(), raw, nav)

	switch {
	case sub.FieldError != "":
		s.renderPage(w, http.StatusUnprocessableEntity, "index", indexPage{
			Value:       raw,
			Placeholder: LinkPlaceholder,
			FieldError:  sub.FieldError,
		})
	case sub.Error != "":
		s.renderPage(w, HTTPStatus(sub.Outcome.Err()), "index", indexPage{
			Value:       raw,
			Placeholder: LinkPlaceholder,
			Error:       sub.Error,
		})
	default:
		http.Redirect(w, r, nav.Last(), http.StatusSeeOther)
	}
}

// handleAPISubmit handles a JSON submission and reports the outcome.
func (s *Server) handleAPISubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	if err := schemas.ValidateExtractionRequest(body); err != nil {
		s.logger.Debug("submission rejected by schema", zap.Error(err))
		s.jsonResponse(w, HTTPStatus(err), errorBody{Error: linkcheck.InvalidLinkMessage, Field: "link"})
		return
	}

	var req types.ExtractionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{Error: linkcheck.InvalidLinkMessage, Field: "link"})
		return
	}

	sub := s.form.Submit(r.Context(), req.Link.String(), nil)
	if sub.FieldError != "" {
		s.jsonResponse(w, http.StatusBadRequest, errorBody{Error: sub.FieldError, Field: "link"})
		return
	}

	outcome := sub.Outcome
	resp := submissionResponse{
		ResultID:   outcome.Result.ResultID,
		Words:      outcome.Result.Words,
		Degraded:   outcome.IsDegraded(),
		NavigateTo: sub.NavigatedTo,
		Error:      sub.Error,
	}
	if resp.Words == nil {
		resp.Words = []string{}
	}
	if outcome.IsDegraded() {
		resp.Reason = outcome.Err().Error()
	}

	status := http.StatusOK
	if sub.Error != "" {
		status = HTTPStatus(outcome.Err())
	}
	s.jsonResponse(w, status, resp)
}

// handleResult renders the page a submission navigates to.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result := types.ExtractionResult{ResultID: r.PathValue("id")}
	s.renderPage(w, http.StatusOK, "result", resultPage{
		ID:          result.ResultID,
		Placeholder: result.IsPlaceholder(),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleBackendHealth reports whether the extraction backend answers its health check.
func (s *Server) handleBackendHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.client.Health(r.Context()); err != nil {
		s.logger.Warn("backend health check failed", zap.Error(err))
		s.jsonResponse(w, HTTPStatus(err), map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "backend": s.client.BaseURL()})
}
