package ops

import (
	"database/sql"

	"github.com/hpungsan/seer/internal/db"
)

// RunsInput contains parameters for the Runs operation.
type RunsInput struct {
	Slug  string // "" lists all slugs
	Limit int    // 0 means DefaultRunsLimit
}

// RunsOutput contains the result of the Runs operation.
type RunsOutput struct {
	Runs []*db.Run `json:"runs"`
}

// Runs lists recorded generations, newest first.
func Runs(database *sql.DB, input RunsInput) (*RunsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRunsLimit
	}
	if limit > MaxRunsLimit {
		limit = MaxRunsLimit
	}

	runs, err := db.ListRuns(database, input.Slug, limit)
	if err != nil {
		return nil, err
	}
	if runs == nil {
		runs = []*db.Run{}
	}
	return &RunsOutput{Runs: runs}, nil
}

// LatestInput contains parameters for the Latest operation.
type LatestInput struct {
	Slug string // "" means newest run overall
}

// LatestOutput contains the result of the Latest operation.
type LatestOutput struct {
	Run *db.Run `json:"run"`
}

// Latest retrieves the most recent run, optionally scoped to a slug.
func Latest(database *sql.DB, input LatestInput) (*LatestOutput, error) {
	run, err := db.LatestRun(database, input.Slug)
	if err != nil {
		return nil, err
	}
	return &LatestOutput{Run: run}, nil
}
