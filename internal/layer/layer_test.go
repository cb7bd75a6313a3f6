package layer_test

import (
	"errors"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/peterstace/simplefeatures/geom"

	"fibercheck/internal/layer"
	"fibercheck/internal/shptest"
)

func writeClosures(t *testing.T, dir string) {
	t.Helper()
	fields := []shp.Field{shptest.Str("IDENTIFIER"), shptest.Num("VIRTUAL"), shptest.Flt("DIAM")}
	shptest.Write(t, dir, "OUT_Closures.shp", shp.POINT, fields,
		shptest.Feature{Shape: shptest.Pt(1, 2), Attrs: []any{"BE16", 0, 12.5}},
		shptest.Feature{Shape: shptest.Pt(3, 4), Attrs: []any{"", 1, 0.0}},
	)
}

func TestOpen_NotFound(t *testing.T) {
	_, err := layer.Open(t.TempDir(), "OUT_Closures.shp")
	if !errors.Is(err, layer.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOpen_ReadsRowsAndColumns(t *testing.T) {
	dir := t.TempDir()
	writeClosures(t, dir)

	tbl, err := layer.Open(dir, "OUT_Closures.shp")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if !tbl.HasColumn("IDENTIFIER") || !tbl.HasColumn("VIRTUAL") {
		t.Fatalf("columns = %v, want IDENTIFIER and VIRTUAL present", tbl.Columns())
	}
	if got := tbl.Value(0, "IDENTIFIER"); got != "BE16" {
		t.Errorf("Value(0, IDENTIFIER) = %q, want BE16", got)
	}
	if !tbl.Empty(1, "IDENTIFIER") {
		t.Errorf("Empty(1, IDENTIFIER) = false, want true")
	}
}

func TestTable_NumericAccessors(t *testing.T) {
	dir := t.TempDir()
	writeClosures(t, dir)
	tbl, err := layer.Open(dir, "OUT_Closures.shp")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if v, ok := tbl.Int(1, "VIRTUAL"); !ok || v != 1 {
		t.Errorf("Int(1, VIRTUAL) = %d, %v; want 1, true", v, ok)
	}
	if v, ok := tbl.Float(0, "DIAM"); !ok || v != 12.5 {
		t.Errorf("Float(0, DIAM) = %v, %v; want 12.5, true", v, ok)
	}
	if _, ok := tbl.Float(0, "NOPE"); ok {
		t.Error("Float on missing column should report !ok")
	}
}

func TestRequire(t *testing.T) {
	dir := t.TempDir()
	writeClosures(t, dir)
	tbl, err := layer.Open(dir, "OUT_Closures.shp")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := tbl.Require("IDENTIFIER", "VIRTUAL"); err != nil {
		t.Errorf("Require(present) = %v, want nil", err)
	}

	err = tbl.Require("IDENTIFIER", "LAYER", "EQ_ID")
	var mce *layer.MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("Require(missing) = %v, want MissingColumnsError", err)
	}
	if len(mce.Columns) != 2 || mce.Columns[0] != "LAYER" || mce.Columns[1] != "EQ_ID" {
		t.Errorf("missing columns = %v, want [LAYER EQ_ID]", mce.Columns)
	}
}

func TestPointAndBBox(t *testing.T) {
	dir := t.TempDir()
	writeClosures(t, dir)
	tbl, err := layer.Open(dir, "OUT_Closures.shp")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	x, y, ok := tbl.Point(0)
	if !ok || x != 1 || y != 2 {
		t.Errorf("Point(0) = (%v, %v, %v), want (1, 2, true)", x, y, ok)
	}
	min, max, ok := tbl.BBox(0)
	if !ok || min != [2]float64{1, 2} || max != [2]float64{1, 2} {
		t.Errorf("BBox(0) = %v %v %v", min, max, ok)
	}
}

func TestGeometry_PolygonIntersects(t *testing.T) {
	dir := t.TempDir()
	fields := []shp.Field{shptest.Num("AGG_ID")}
	shptest.Write(t, dir, "OUT_FeederClusters.shp", shp.POLYGON, fields,
		shptest.Feature{Shape: shptest.Square(0, 0, 2), Attrs: []any{1}},
		shptest.Feature{Shape: shptest.Square(1, 1, 2), Attrs: []any{2}},
		shptest.Feature{Shape: shptest.Square(10, 10, 2), Attrs: []any{3}},
	)
	tbl, err := layer.Open(dir, "OUT_FeederClusters.shp")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	g0, ok, err := tbl.Geometry(0)
	if err != nil || !ok {
		t.Fatalf("Geometry(0): ok=%v err=%v", ok, err)
	}
	g1, _, _ := tbl.Geometry(1)
	g2, _, _ := tbl.Geometry(2)

	if !geom.Intersects(g0, g1) {
		t.Error("squares (0,0,2) and (1,1,2) should intersect")
	}
	if geom.Intersects(g0, g2) {
		t.Error("squares (0,0,2) and (10,10,2) should not intersect")
	}
}
