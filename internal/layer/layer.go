// Package layer loads named vector layers (shapefile + DBF attribute
// table) from a workspace directory. A loaded Table gives the checks
// random access to attribute values and feature geometries; the file
// name is the sole lookup key within a workspace.
package layer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
)

// ErrNotFound reports that the requested layer file is absent from the
// workspace. Callers translate it into an indeterminate check result.
var ErrNotFound = errors.New("layer not found")

// MissingColumnsError reports required attribute columns absent from a
// loaded layer.
type MissingColumnsError struct {
	Layer   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Table is a layer loaded fully into memory: attribute rows plus the
// parallel geometry slice. Tables are read-only after Open.
type Table struct {
	Name string

	cols   []string
	index  map[string]int
	rows   [][]string
	shapes []shp.Shape
}

// Open loads the named layer from dir. Returns an error wrapping
// ErrNotFound when the .shp file does not exist.
func Open(dir, filename string) (*Table, error) {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", filename, ErrNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", filename, err)
	}

	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer r.Close()

	fields := r.Fields()
	t := &Table{
		Name:  filename,
		cols:  make([]string, len(fields)),
		index: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		name := f.String()
		t.cols[i] = name
		t.index[name] = i
	}

	for r.Next() {
		n, shape := r.Shape()
		row := make([]string, len(fields))
		for i := range fields {
			row[i] = strings.Trim(r.ReadAttribute(n, i), "\x00 ")
		}
		t.rows = append(t.rows, row)
		t.shapes = append(t.shapes, shape)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return t, nil
}

// Len reports the number of features in the layer.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the attribute column names in file order.
func (t *Table) Columns() []string { return t.cols }

// HasColumn reports whether the named attribute column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require verifies the layer exposes every named column, returning a
// MissingColumnsError listing all absences.
func (t *Table) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Layer: t.Name, Columns: missing}
	}
	return nil
}

// Value returns the attribute value at (row, col) as a trimmed string.
// Missing columns and out-of-range rows yield "".
func (t *Table) Value(row int, col string) string {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][i]
}

// Empty reports whether the attribute at (row, col) is blank. DBF has
// no real null, so blank-after-trim is the empty test everywhere.
func (t *Table) Empty(row int, col string) bool {
	return t.Value(row, col) == ""
}

// Float parses the attribute at (row, col) as a float. ok is false for
// blank or unparseable values.
func (t *Table) Float(row int, col string) (float64, bool) {
	s := t.Value(row, col)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Int parses the attribute at (row, col) as an integer, accepting the
// DBF numeric form with a decimal part (e.g. "1.00000").
func (t *Table) Int(row int, col string) (int64, bool) {
	v, ok := t.Float(row, col)
	if !ok {
		return 0, false
	}
	return int64(v), true
}
