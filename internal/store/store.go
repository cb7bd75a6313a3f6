// Package store persists validation run history in a local SQLite
// database, so past verdicts can be listed and re-rendered without
// re-reading the export.
package store

import (
	"os"
	"path/filepath"

	"fibercheck/internal/checks"
)

// Run is one recorded validation: where it ran, when, and the full
// per-check results.
type Run struct {
	ID         int64
	Source     string // path the user supplied (directory or zip)
	Workspace  string // resolved layer directory
	StartedAt  string // RFC3339 UTC
	FinishedAt string
	Results    []checks.Result
}

// Failed counts results with Fail status.
func (r *Run) Failed() int { return r.countStatus(checks.Fail) }

// Indeterminate counts results with Indeterminate status.
func (r *Run) Indeterminate() int { return r.countStatus(checks.Indeterminate) }

func (r *Run) countStatus(s checks.Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// RunSummary is the listing row: a Run without its payload.
type RunSummary struct {
	ID                  int64
	Source              string
	Workspace           string
	StartedAt           string
	FinishedAt          string
	ChecksTotal         int
	ChecksFailed        int
	ChecksIndeterminate int
}

// DefaultDBPath returns the per-user history database location,
// ~/.fibercheck/runs.db, falling back to the working directory when
// the home directory cannot be resolved.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fibercheck", "runs.db")
	}
	return filepath.Join(home, ".fibercheck", "runs.db")
}
