package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/seer/internal/db"
	"github.com/hpungsan/seer/internal/errors"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "runs"
}

// RunsPageData is the template data for the run list page.
type RunsPageData struct {
	PageData
	Runs []*db.Run
	Slug string
}

// RunPageData is the template data for the run detail page.
type RunPageData struct {
	PageData
	Run          *db.Run
	ReportHTML   template.HTML
	DocumentName string
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"runs":  "runs.html",
		"run":   "run.html",
		"error": "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var sErr *errors.SeerError
	if !stderrors.As(err, &sErr) {
		sErr = errors.NewInternal(err)
	}

	status := httpStatus(sErr)
	message := sErr.Message

	// JSON request
	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    string(sErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	// Full error page
	r.renderPageStatus(w, req, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// httpStatus maps an error code to an HTTP status. SeerError statuses are
// process exit codes, not HTTP codes.
func httpStatus(err *errors.SeerError) int {
	switch err.Code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// runReport builds the markdown report shown on a run's detail page.
func runReport(r *db.Run) string {
	var sb strings.Builder
	sb.WriteString("## Prompt\n\n```\n")
	sb.WriteString(r.Prompt)
	sb.WriteString("\n```\n\n## Compilation\n\n")
	fmt.Fprintf(&sb, "- preset: **%s**, theme: **%s**, fidelity: **%s**\n", r.Preset, r.Theme, r.Fidelity)
	fmt.Fprintf(&sb, "- seed: `%d`\n", r.Seed)
	fmt.Fprintf(&sb, "- %d screen(s), %d element(s)\n", r.Screens, r.Elements)
	fmt.Fprintf(&sb, "- written to `%s`\n", r.OutPath)
	if r.MetaJSON != "" {
		sb.WriteString("\n## Metadata\n\n```json\n")
		sb.WriteString(prettyJSON(r.MetaJSON))
		sb.WriteString("\n```\n")
	}
	return sb.String()
}

// prettyJSON re-indents a compact JSON string; returns the input on error.
func prettyJSON(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return s
	}
	return buf.String()
}

// formatTime formats a Unix-millisecond timestamp as "2006-01-02 15:04" UTC.
func formatTime(unixMS int64) string {
	return time.UnixMilli(unixMS).UTC().Format("2006-01-02 15:04")
}
