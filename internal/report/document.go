// Package report renders validation results as Markdown, HTML, PDF and
// the JSON artifact consumed by downstream tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"fibercheck/internal/checks"
	"fibercheck/internal/format"
)

// Document is one rendered validation run: the bundle it validated and
// the per-check results in execution order.
type Document struct {
	Filename string          `json:"filename"`
	Results  []checks.Result `json:"results"`
}

// Passed counts results with Pass status.
func (d *Document) Passed() int { return d.count(checks.Pass) }

// Failed counts results with Fail status.
func (d *Document) Failed() int { return d.count(checks.Fail) }

// Indeterminate counts results with Indeterminate status.
func (d *Document) Indeterminate() int { return d.count(checks.Indeterminate) }

func (d *Document) count(s checks.Status) int {
	n := 0
	for _, r := range d.Results {
		if r.Status == s {
			n++
		}
	}
	return n
}

// Mark returns the glyph for a status in summary tables.
func Mark(s checks.Status) string {
	switch s {
	case checks.Pass:
		return format.PassMark
	case checks.Fail:
		return format.FailMark
	default:
		return format.ErrMark
	}
}

// WriteJSON writes the artifact in the upstream wire shape: an object
// with the bundle filename and results as [name, status, message]
// triples, status encoded false/true/null.
func WriteJSON(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ReadJSON loads an artifact previously written by WriteJSON, so a run
// can be re-rendered without the history database.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode report artifact: %w", err)
	}
	return &d, nil
}
