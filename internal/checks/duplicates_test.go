package checks

import (
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"

	"fibercheck/internal/shptest"
)

func TestOSCDuplicates_Pass(t *testing.T) {
	dir := t.TempDir()
	writeClosureLayer(t, dir,
		closureRow{linkedAgg: "A", id: "1"},
		closureRow{linkedAgg: "B", id: "2"},
	)

	status, msg := checkOSCDuplicates(testEnv(dir))
	if status != Pass {
		t.Fatalf("status = %v, want Pass; message:\n%s", status, msg)
	}
	if !strings.Contains(msg, "no duplicated OSCs") {
		t.Errorf("message should confirm no duplicates:\n%s", msg)
	}
}

func TestOSCDuplicates_Fail(t *testing.T) {
	dir := t.TempDir()
	writeClosureLayer(t, dir,
		closureRow{linkedAgg: "A", id: "1"},
		closureRow{linkedAgg: "B", id: "2"},
		closureRow{linkedAgg: "A", id: "3"},
	)

	status, msg := checkOSCDuplicates(testEnv(dir))
	if status != Fail {
		t.Fatalf("status = %v, want Fail; message:\n%s", status, msg)
	}
	if !strings.Contains(msg, "Total duplicated entries: 2") {
		t.Errorf("message should count both members of the duplicate group:\n%s", msg)
	}
	if !strings.Contains(msg, "A") {
		t.Errorf("message should list the duplicated value:\n%s", msg)
	}
}

func TestOSCDuplicates_MissingFile(t *testing.T) {
	status, msg := checkOSCDuplicates(testEnv(t.TempDir()))
	if status != Indeterminate {
		t.Fatalf("status = %v, want Indeterminate", status)
	}
	if !strings.Contains(msg, "OUT_Closures.shp") {
		t.Errorf("message should name the missing file:\n%s", msg)
	}
}

func TestOSCDuplicates_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	shptest.Write(t, dir, "OUT_Closures.shp", shp.POINT,
		[]shp.Field{shptest.Str("IDENTIFIER")},
		shptest.Feature{Shape: shptest.Pt(0, 0), Attrs: []any{"BE16"}})

	status, msg := checkOSCDuplicates(testEnv(dir))
	if status != Indeterminate {
		t.Fatalf("status = %v, want Indeterminate; message:\n%s", status, msg)
	}
	if !strings.Contains(msg, "LINKED_AGG") {
		t.Errorf("message should name the missing column:\n%s", msg)
	}
}
