// Package shptest writes small shapefile fixtures for tests. It is the
// only place that exercises the go-shp writer; production code never
// writes layers.
package shptest

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
)

// Feature is one fixture row: a shape plus attribute values in field
// order.
type Feature struct {
	Shape shp.Shape
	Attrs []any
}

// Write creates dir/name (a .shp/.shx/.dbf triplet) with the given
// shape type, fields and features.
func Write(tb testing.TB, dir, name string, shapeType shp.ShapeType, fields []shp.Field, feats ...Feature) {
	tb.Helper()
	w, err := shp.Create(filepath.Join(dir, name), shapeType)
	if err != nil {
		tb.Fatalf("create %s: %v", name, err)
	}
	defer w.Close()
	w.SetFields(fields)
	for _, f := range feats {
		row := int(w.Write(f.Shape))
		for i, v := range f.Attrs {
			if err := w.WriteAttribute(row, i, v); err != nil {
				tb.Fatalf("write attribute %s row %d field %d: %v", name, row, i, err)
			}
		}
	}
}

// Str returns a 50-char string field.
func Str(name string) shp.Field { return shp.StringField(name, 50) }

// Num returns a 16-digit integer field.
func Num(name string) shp.Field { return shp.NumberField(name, 16) }

// Flt returns a float field with 6 decimal places.
func Flt(name string) shp.Field { return shp.FloatField(name, 20, 6) }

// Pt returns a point shape.
func Pt(x, y float64) *shp.Point { return &shp.Point{X: x, Y: y} }

// Poly returns a single-ring polygon over the given vertices, closing
// the ring if needed.
func Poly(coords ...[2]float64) *shp.Polygon {
	pts := make([]shp.Point, 0, len(coords)+1)
	for _, c := range coords {
		pts = append(pts, shp.Point{X: c[0], Y: c[1]})
	}
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	return &shp.Polygon{
		Box:       shp.BBoxFromPoints(pts),
		NumParts:  1,
		NumPoints: int32(len(pts)),
		Parts:     []int32{0},
		Points:    pts,
	}
}

// Square returns an axis-aligned square polygon with corner (x, y) and
// the given side length.
func Square(x, y, side float64) *shp.Polygon {
	return Poly([2]float64{x, y}, [2]float64{x + side, y}, [2]float64{x + side, y + side}, [2]float64{x, y + side})
}

// Null returns a null shape (feature with no geometry).
func Null() *shp.Null { return &shp.Null{} }
