package db

import (
	"database/sql"

	"github.com/hpungsan/seer/internal/errors"
)

// Run is one recorded generation: what was asked for, how it was
// compiled, and where the document landed.
type Run struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name,omitempty"`
	Prompt    string `json:"prompt"`
	Preset    string `json:"preset"`
	Theme     string `json:"theme"`
	Fidelity  string `json:"fidelity"`
	Seed      int64  `json:"seed"`
	Screens   int    `json:"screens"`
	Elements  int    `json:"elements"`
	OutPath   string `json:"out_path"`
	MetaJSON  string `json:"-"`
	CreatedAt int64  `json:"created_at"` // unix milliseconds
}

// InsertRun stores a completed run.
func InsertRun(db *sql.DB, r *Run) error {
	name := toNullString(r.Name)
	meta := toNullString(r.MetaJSON)

	query := `
		INSERT INTO runs (
			id, slug, name, prompt, preset, theme, fidelity,
			seed, screens, elements, out_path, meta_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		r.ID, r.Slug, name, r.Prompt, r.Preset, r.Theme, r.Fidelity,
		r.Seed, r.Screens, r.Elements, r.OutPath, meta, r.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// GetRun retrieves a run by its identifier.
func GetRun(db *sql.DB, id string) (*Run, error) {
	row := db.QueryRow(selectRuns+" WHERE id = ?", id)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return r, nil
}

// LatestRun retrieves the most recent run for a slug, or the most recent
// run overall when slug is empty.
func LatestRun(db *sql.DB, slug string) (*Run, error) {
	var row *sql.Row
	if slug == "" {
		row = db.QueryRow(selectRuns + " ORDER BY created_at DESC, id DESC LIMIT 1")
	} else {
		row = db.QueryRow(selectRuns+" WHERE slug = ? ORDER BY created_at DESC, id DESC LIMIT 1", slug)
	}
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(slug)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return r, nil
}

// ListRuns returns runs newest first, optionally filtered by slug.
// limit <= 0 means no limit.
func ListRuns(db *sql.DB, slug string, limit int) ([]*Run, error) {
	query := selectRuns
	args := []any{}
	if slug != "" {
		query += " WHERE slug = ?"
		args = append(args, slug)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return runs, nil
}

const selectRuns = `
	SELECT id, slug, name, prompt, preset, theme, fidelity,
		seed, screens, elements, out_path, meta_json, created_at
	FROM runs
`

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	var name, meta sql.NullString
	err := s.Scan(
		&r.ID, &r.Slug, &name, &r.Prompt, &r.Preset, &r.Theme, &r.Fidelity,
		&r.Seed, &r.Screens, &r.Elements, &r.OutPath, &meta, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Name = name.String
	r.MetaJSON = meta.String
	return &r, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
