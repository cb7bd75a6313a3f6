package layer

import (
	"fmt"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/peterstace/simplefeatures/geom"
)

// Point returns the coordinates of the feature at row for point layers.
// ok is false for null shapes and non-point geometries.
func (t *Table) Point(row int) (x, y float64, ok bool) {
	if row < 0 || row >= len(t.shapes) {
		return 0, 0, false
	}
	switch s := t.shapes[row].(type) {
	case *shp.Point:
		return s.X, s.Y, true
	case *shp.PointZ:
		return s.X, s.Y, true
	case *shp.PointM:
		return s.X, s.Y, true
	}
	return 0, 0, false
}

// BBox returns the bounding box of the feature at row as rtree-style
// min/max corners. ok is false for null shapes.
func (t *Table) BBox(row int) (min, max [2]float64, ok bool) {
	if row < 0 || row >= len(t.shapes) {
		return min, max, false
	}
	if _, null := t.shapes[row].(*shp.Null); null || t.shapes[row] == nil {
		return min, max, false
	}
	box := t.shapes[row].BBox()
	return [2]float64{box.MinX, box.MinY}, [2]float64{box.MaxX, box.MaxY}, true
}

// Geometry converts the feature at row to a simplefeatures geometry for
// exact intersection tests. ok is false for null shapes; err reports a
// malformed shape.
func (t *Table) Geometry(row int) (geom.Geometry, bool, error) {
	var g geom.Geometry
	if row < 0 || row >= len(t.shapes) || t.shapes[row] == nil {
		return g, false, nil
	}
	var wkt string
	switch s := t.shapes[row].(type) {
	case *shp.Null:
		return g, false, nil
	case *shp.Point:
		wkt = pointWKT(s.X, s.Y)
	case *shp.PointZ:
		wkt = pointWKT(s.X, s.Y)
	case *shp.PointM:
		wkt = pointWKT(s.X, s.Y)
	case *shp.Polygon:
		wkt = polygonWKT(s.Parts, s.Points)
	case *shp.PolygonZ:
		wkt = polygonWKT(s.Parts, s.Points)
	case *shp.PolyLine:
		wkt = polylineWKT(s.Parts, s.Points)
	case *shp.PolyLineZ:
		wkt = polylineWKT(s.Parts, s.Points)
	default:
		return g, false, fmt.Errorf("%s row %d: unsupported shape type %T", t.Name, row, s)
	}
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return g, false, fmt.Errorf("%s row %d: %w", t.Name, row, err)
	}
	return g, true, nil
}

func coord(x, y float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + " " + strconv.FormatFloat(y, 'f', -1, 64)
}

func pointWKT(x, y float64) string {
	return "POINT(" + coord(x, y) + ")"
}

// partRanges slices the flat shapefile point array into per-part ranges.
func partRanges(parts []int32, total int) [][2]int {
	if len(parts) == 0 {
		return [][2]int{{0, total}}
	}
	ranges := make([][2]int, 0, len(parts))
	for i, start := range parts {
		end := total
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		ranges = append(ranges, [2]int{int(start), end})
	}
	return ranges
}

// polygonWKT renders a shapefile polygon as MULTIPOLYGON, one single-ring
// polygon per part. Hole rings are treated as solid parts; that is
// enough for the overlap predicate, which only asks whether two features
// touch at all.
func polygonWKT(parts []int32, pts []shp.Point) string {
	var b strings.Builder
	b.WriteString("MULTIPOLYGON(")
	for i, r := range partRanges(parts, len(pts)) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("((")
		ring := pts[r[0]:r[1]]
		for j, p := range ring {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(coord(p.X, p.Y))
		}
		// WKT rings must close; shapefile rings usually do already.
		if len(ring) > 0 && (ring[0].X != ring[len(ring)-1].X || ring[0].Y != ring[len(ring)-1].Y) {
			b.WriteByte(',')
			b.WriteString(coord(ring[0].X, ring[0].Y))
		}
		b.WriteString("))")
	}
	b.WriteByte(')')
	return b.String()
}

func polylineWKT(parts []int32, pts []shp.Point) string {
	var b strings.Builder
	b.WriteString("MULTILINESTRING(")
	for i, r := range partRanges(parts, len(pts)) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		for j, p := range pts[r[0]:r[1]] {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(coord(p.X, p.Y))
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}
