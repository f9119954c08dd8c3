package ops

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/seer/internal/compile"
	"github.com/hpungsan/seer/internal/db"
	"github.com/hpungsan/seer/internal/errors"
	"github.com/hpungsan/seer/internal/library"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	Text        string // required prompt text
	Preset      string // "" infers from the prompt
	Size        string // explicit "WxH" override, "" infers from the prompt
	Theme       string // "" means classic
	Fidelity    string // "" means medium
	Seed        *int64 // nil derives a stable seed from the inputs
	LibraryPath string // "" disables library-backed layout
	NoLibrary   bool   // force primitive-only layout
	Strict      bool   // validate the scene before writing
	Name        string // run name; also drives the output slug
	OutFile     string // explicit output path; "-" writes nothing (caller streams Document)
	OutDir      string // directory for derived output naming
	ShowLabels  bool   // caption each screen boundary
}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	RunID      string        `json:"run_id"`
	Slug       string        `json:"slug"`
	OutPath    string        `json:"out_path"`
	LatestPath string        `json:"latest_path,omitempty"`
	Seed       int64         `json:"seed"`
	Meta       *compile.Meta `json:"meta"`
	Warnings   []string      `json:"warnings,omitempty"`
	Document   []byte        `json:"-"`
}

// Generate compiles prompt text into an Excalidraw document, writes it
// out, and records the run. A nil database skips run recording. Library
// load failures degrade to primitive-only layout with a warning.
func Generate(database *sql.DB, input GenerateInput) (*GenerateOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.NewInvalidRequest("text must not be empty")
	}

	theme, err := ResolveTheme(input.Theme)
	if err != nil {
		return nil, err
	}
	fidelity, err := ResolveFidelity(input.Fidelity)
	if err != nil {
		return nil, err
	}
	preset, explicit, err := ResolvePreset(input.Preset)
	if err != nil {
		return nil, err
	}
	if !explicit {
		preset = compile.InferPreset(text)
	}

	width, height := 0, 0
	if input.Size != "" {
		w, h, ok := compile.InferSize(input.Size)
		if !ok {
			return nil, errors.NewInvalidRequest("size must be WxH with both dimensions >= 100")
		}
		width, height = w, h
	} else if w, h, ok := compile.InferSize(text); ok {
		width, height = w, h
	}

	var warnings []string
	var catalog *library.Catalog
	if !input.NoLibrary && input.LibraryPath != "" {
		catalog, err = library.Load(input.LibraryPath)
		if err != nil {
			warnings = append(warnings, err.Error())
			catalog = nil
		}
	}

	seed := compile.DeriveSeed(text, preset, width, height, theme, fidelity)
	if input.Seed != nil {
		seed = *input.Seed
	}

	doc, meta, err := compile.Build(compile.BuildInput{
		Text:          text,
		Preset:        preset,
		Width:         width,
		Height:        height,
		Theme:         theme,
		Fidelity:      fidelity,
		Seed:          seed,
		Strict:        input.Strict,
		Catalog:       catalog,
		PreferLibrary: catalog != nil,
		ShowLabels:    input.ShowLabels,
	})
	if err != nil {
		return nil, err
	}

	data, err := doc.Marshal()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	runID := strings.ToLower(ulid.Make().String())

	name := input.Name
	if name == "" && len(meta.Screens) > 0 {
		name = meta.Screens[0].Name
	}
	slug := compile.Slugify(name)

	out := &GenerateOutput{
		RunID:    runID,
		Slug:     slug,
		Seed:     seed,
		Meta:     meta,
		Warnings: warnings,
		Document: data,
	}

	dir := input.OutDir
	if dir == "" {
		dir = "."
	}
	switch {
	case input.OutFile == "-":
		out.OutPath = "-"
	case input.OutFile != "":
		out.OutPath = input.OutFile
		if err := writeDocument(out.OutPath, data); err != nil {
			return nil, err
		}
	default:
		out.OutPath = filepath.Join(dir, "nl-"+slug+"-"+runID+".excalidraw")
		if err := writeDocument(out.OutPath, data); err != nil {
			return nil, err
		}
	}
	if out.OutPath != "-" {
		// Convenience copy that always points at the newest run per slug,
		// kept under the out dir even when an explicit path was given.
		out.LatestPath = filepath.Join(dir, "latest-"+slug+".excalidraw")
		if err := writeDocument(out.LatestPath, data); err != nil {
			return nil, err
		}
	}

	if database != nil && out.OutPath != "-" {
		metaJSON, _ := json.Marshal(meta)
		record := &db.Run{
			ID:        runID,
			Slug:      slug,
			Name:      input.Name,
			Prompt:    text,
			Preset:    meta.Preset,
			Theme:     meta.Theme,
			Fidelity:  string(meta.Fidelity),
			Seed:      seed,
			Screens:   len(meta.Screens),
			Elements:  len(doc.Elements),
			OutPath:   out.OutPath,
			MetaJSON:  string(metaJSON),
			CreatedAt: time.Now().UnixMilli(),
		}
		if err := db.InsertRun(database, record); err != nil {
			warnings = append(warnings, "failed to record run: "+err.Error())
			out.Warnings = warnings
		}
	}

	return out, nil
}

func writeDocument(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewInternal(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}
