package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// LinkPlaceholder is the hint shown in the empty link field.
const LinkPlaceholder = "Insert your reddit thread link here..."

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// indexPage is the data for the link form.
type indexPage struct {
	Value       string
	Placeholder string
	FieldError  string
	Error       string
}

// resultPage is the data for a result view.
type resultPage struct {
	ID          string
	Placeholder bool
}

// renderPage executes the named template into a buffer first so a template
// error never leaves a half-written response.
func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
