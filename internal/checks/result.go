// Package checks is the validation rule engine: a fixed catalogue of
// independent checks over the vector layers of a Comsof FTTH design
// export. Each check loads the layers it needs, inspects attribute and
// geometric consistency, and returns a tri-state verdict with a
// human-readable diagnosis.
package checks

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the tri-state verdict of a single check.
//
// The upstream report pipeline encodes Pass as false ("no issue"),
// Fail as true ("issue found") and Indeterminate as null; MarshalJSON
// preserves that polarity exactly so existing renderers keep working.
type Status int

const (
	// Pass means the check ran and found no problems.
	Pass Status = iota
	// Fail means the check ran and found a data violation.
	Fail
	// Indeterminate means the check could not execute: missing file,
	// missing required column, or an unexpected error. It is never
	// conflated with Pass.
	Indeterminate
)

// String returns the human-readable verdict word.
func (s Status) String() string {
	switch s {
	case Pass:
		return "passed"
	case Fail:
		return "failed"
	default:
		return "indeterminate"
	}
}

// MarshalJSON encodes the wire polarity: Pass→false, Fail→true,
// Indeterminate→null.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case Pass:
		return []byte("false"), nil
	case Fail:
		return []byte("true"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the bool-or-null wire form.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("false")):
		*s = Pass
	case bytes.Equal(data, []byte("true")):
		*s = Fail
	case bytes.Equal(data, []byte("null")):
		*s = Indeterminate
	default:
		return fmt.Errorf("invalid check status %q", data)
	}
	return nil
}

// Result is the engine's unit of output: one per requested check name,
// immutable once created.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// MarshalJSON renders the upstream triple form [name, status, message].
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.Name, r.Status, r.Message})
}

// UnmarshalJSON accepts the triple form.
func (r *Result) UnmarshalJSON(data []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("check result: want 3 elements, got %d", len(triple))
	}
	if err := json.Unmarshal(triple[0], &r.Name); err != nil {
		return fmt.Errorf("check result name: %w", err)
	}
	if err := json.Unmarshal(triple[1], &r.Status); err != nil {
		return fmt.Errorf("check result status: %w", err)
	}
	if err := json.Unmarshal(triple[2], &r.Message); err != nil {
		return fmt.Errorf("check result message: %w", err)
	}
	return nil
}
