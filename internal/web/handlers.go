package web

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hpungsan/seer/internal/config"
	"github.com/hpungsan/seer/internal/db"
	"github.com/hpungsan/seer/internal/errors"
)

// Handlers contains HTTP route handlers for the run viewer.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	renderer *Renderer
}

// HandleRuns handles GET /runs — list recorded generations, newest first.
func (h *Handlers) HandleRuns(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	limit := parseIntParam(r, "limit", 50)

	runs, err := db.ListRuns(h.db, slug, limit)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, map[string]any{"runs": runs})
		return
	}

	h.renderer.renderPage(w, r, "runs", RunsPageData{
		PageData: PageData{
			Title:   "Runs",
			Version: h.renderer.version,
			Nav:     "runs",
		},
		Runs: runs,
		Slug: slug,
	})
}

// HandleRunDetail handles GET /runs/{id} — view one run with its report.
func (h *Handlers) HandleRunDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("run ID is required"))
		return
	}

	run, err := db.GetRun(h.db, id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, run)
		return
	}

	h.renderer.renderPage(w, r, "run", RunPageData{
		PageData: PageData{
			Title:   displayName(run),
			Version: h.renderer.version,
			Nav:     "runs",
		},
		Run:          run,
		ReportHTML:   renderMarkdown(runReport(run)),
		DocumentName: filepath.Base(run.OutPath),
	})
}

// HandleRunDocument handles GET /runs/{id}/document — download the
// generated Excalidraw file for a run.
func (h *Handlers) HandleRunDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("run ID is required"))
		return
	}

	run, err := db.GetRun(h.db, id)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	data, err := os.ReadFile(run.OutPath)
	if err != nil {
		h.renderer.renderError(w, r, errors.NewNotFound(run.OutPath))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(run.OutPath)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// displayName returns the run's name if present, or a truncated ID.
func displayName(run *db.Run) string {
	if run.Name != "" {
		return run.Name
	}
	if len(run.ID) > 10 {
		return run.ID[:10] + "..."
	}
	return run.ID
}
