package checks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/tidwall/rtree"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// checkClusterOverlaps detects geometrically intersecting features
// within each cluster layer. Cluster polygons partition the service
// area; two clusters of the same layer must never overlap.
//
// Per layer it builds an R-tree over feature envelopes once, queries
// bounding-box candidates per feature, and confirms candidates with an
// exact intersection test. Only unordered pairs with i < j are counted,
// so a pair is reported once and features never pair with themselves.
func checkClusterOverlaps(e *Env) (Status, string) {
	var r report
	r.add("Running cluster self-overlap checks")
	r.add("")

	hasIssues := false
	for _, file := range e.cfg().ClusterLayers {
		tbl, err := layer.Open(e.Dir, file)
		if err != nil {
			if errors.Is(err, layer.ErrNotFound) {
				r.addf("%s File not found: %s", format.WarnMark, file)
				continue
			}
			return Indeterminate, fmt.Sprintf("%s Error running cluster overlap checks: %v", format.ErrMark, err)
		}

		pairs, err := overlapPairs(tbl)
		if err != nil {
			return Indeterminate, fmt.Sprintf("%s Error running cluster overlap checks: %v", format.ErrMark, err)
		}

		if len(pairs) == 0 {
			r.addf("%s %s: no overlaps detected.", format.PassMark, file)
		} else {
			hasIssues = true
			r.addf("%s %s: %d overlaps found:", format.FailMark, file, len(pairs))
			for _, p := range pairs[:min(5, len(pairs))] {
				col := clusterIDColumn(file)
				r.addf("   • Cluster %s %s overlaps with %s %s",
					col, clusterRef(tbl, col, p[0]), col, clusterRef(tbl, col, p[1]))
			}
		}
		r.rule()
	}

	if hasIssues {
		return Fail, r.String()
	}
	return Pass, r.String()
}

// overlapPairs returns the unordered index pairs of intersecting,
// non-null-geometry features in tbl, in ascending (i, j) order.
func overlapPairs(tbl *layer.Table) ([][2]int, error) {
	geoms := make([]geom.Geometry, tbl.Len())
	live := make([]bool, tbl.Len())

	var index rtree.RTreeG[int]
	for i := 0; i < tbl.Len(); i++ {
		g, ok, err := tbl.Geometry(i)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		min, max, ok := tbl.BBox(i)
		if !ok {
			continue
		}
		geoms[i] = g
		live[i] = true
		index.Insert(min, max, i)
	}

	var pairs [][2]int
	for i := 0; i < tbl.Len(); i++ {
		if !live[i] {
			continue
		}
		min, max, _ := tbl.BBox(i)
		index.Search(min, max, func(_, _ [2]float64, j int) bool {
			if i < j && geom.Intersects(geoms[i], geoms[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
			return true
		})
	}
	return pairs, nil
}

// clusterIDColumn picks the identifying attribute for a cluster layer:
// cable-cluster layers are grouped by CAB_GROUP, the rest by AGG_ID.
func clusterIDColumn(file string) string {
	if strings.Contains(file, "CableClusters") {
		return "CAB_GROUP"
	}
	return "AGG_ID"
}

// clusterRef returns the feature's identifying value, falling back to
// the row index when the attribute is absent.
func clusterRef(t *layer.Table, col string, row int) string {
	if t.HasColumn(col) {
		return t.Value(row, col)
	}
	return strconv.Itoa(row)
}
