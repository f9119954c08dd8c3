package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/seer/internal/config"
	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db     *sql.DB
	cfg    *config.Config
	outDir string
}

// NewHandlers creates a new Handlers instance. outDir is where generated
// documents are written.
func NewHandlers(db *sql.DB, cfg *config.Config, outDir string) *Handlers {
	return &Handlers{db: db, cfg: cfg, outDir: outDir}
}

// Request types for each tool

// GenerateRequest represents the arguments for wireframe_generate.
type GenerateRequest struct {
	Text      string `json:"text"`
	Preset    string `json:"preset,omitempty"`
	Size      string `json:"size,omitempty"`
	Theme     string `json:"theme,omitempty"`
	Fidelity  string `json:"fidelity,omitempty"`
	Seed      *int64 `json:"seed,omitempty"`
	Name      string `json:"name,omitempty"`
	NoLibrary bool   `json:"no_library,omitempty"`
	Strict    *bool  `json:"strict,omitempty"`
}

// RunsRequest represents the arguments for wireframe_runs.
type RunsRequest struct {
	Slug  string `json:"slug,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// LatestRequest represents the arguments for wireframe_latest.
type LatestRequest struct {
	Slug string `json:"slug,omitempty"`
}

// Handler implementations

// HandleGenerate handles the wireframe_generate tool call.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	strict := true
	if input.Strict != nil {
		strict = *input.Strict
	}

	theme := input.Theme
	if theme == "" {
		theme = h.cfg.Theme
	}
	fidelity := input.Fidelity
	if fidelity == "" {
		fidelity = h.cfg.Fidelity
	}

	result, err := ops.Generate(h.db, ops.GenerateInput{
		Text:        input.Text,
		Preset:      input.Preset,
		Size:        input.Size,
		Theme:       theme,
		Fidelity:    fidelity,
		Seed:        input.Seed,
		LibraryPath: h.cfg.LibraryPath,
		NoLibrary:   input.NoLibrary,
		Strict:      strict,
		Name:        input.Name,
		OutDir:      h.outDir,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRuns handles the wireframe_runs tool call.
func (h *Handlers) HandleRuns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RunsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Runs(h.db, ops.RunsInput{
		Slug:  input.Slug,
		Limit: input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleLatest handles the wireframe_latest tool call.
func (h *Handlers) HandleLatest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[LatestRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Latest(h.db, ops.LatestInput{Slug: input.Slug})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.SeerError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  1,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
