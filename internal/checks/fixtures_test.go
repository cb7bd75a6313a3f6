package checks

import (
	"testing"

	shp "github.com/jonas-p/go-shp"

	"fibercheck/internal/config"
	"fibercheck/internal/shptest"
)

func testEnv(dir string) *Env {
	return &Env{Dir: dir, Config: config.Default()}
}

// closureRow is one OUT_Closures feature for fixtures.
type closureRow struct {
	linkedAgg  string
	identifier string
	virtual    int
	layerName  string
	eqID       string
	id         string
}

func writeClosureLayer(t *testing.T, dir string, rows ...closureRow) {
	t.Helper()
	fields := []shp.Field{
		shptest.Str("LINKED_AGG"), shptest.Str("IDENTIFIER"), shptest.Num("VIRTUAL"),
		shptest.Str("LAYER"), shptest.Str("EQ_ID"), shptest.Str("ID"),
	}
	feats := make([]shptest.Feature, len(rows))
	for i, row := range rows {
		feats[i] = shptest.Feature{
			Shape: shptest.Pt(float64(i), float64(i)),
			Attrs: []any{row.linkedAgg, row.identifier, row.virtual, row.layerName, row.eqID, row.id},
		}
	}
	shptest.Write(t, dir, "OUT_Closures.shp", shp.POINT, fields, feats...)
}

func writeSpliceLayer(t *testing.T, dir string, closureIDs ...string) {
	t.Helper()
	feats := make([]shptest.Feature, len(closureIDs))
	for i, id := range closureIDs {
		feats[i] = shptest.Feature{Shape: shptest.Pt(float64(i), 0), Attrs: []any{id}}
	}
	shptest.Write(t, dir, "OUT_Splices.shp", shp.POINT, []shp.Field{shptest.Str("ID")}, feats...)
}

// cableRow is one OUT_<Tier>Cables feature for fixtures.
type cableRow struct {
	cableID    string
	identifier string
	cableGran  int
	bundleGran int
	diameter   float64
}

func writeCableLayer(t *testing.T, dir, tier string, rows ...cableRow) {
	t.Helper()
	fields := []shp.Field{
		shptest.Str("CABLE_ID"), shptest.Str("IDENTIFIER"),
		shptest.Num("CABLEGRAN"), shptest.Num("BUNDLEGRAN"), shptest.Flt("DIAMETER"),
	}
	feats := make([]shptest.Feature, len(rows))
	for i, row := range rows {
		feats[i] = shptest.Feature{
			Shape: shptest.Pt(float64(i), 0),
			Attrs: []any{row.cableID, row.identifier, row.cableGran, row.bundleGran, row.diameter},
		}
	}
	shptest.Write(t, dir, tierCablesFile(tier), shp.POINT, fields, feats...)
}

func writePieceLayer(t *testing.T, dir, tier string, cableIDs ...string) {
	t.Helper()
	feats := make([]shptest.Feature, len(cableIDs))
	for i, id := range cableIDs {
		feats[i] = shptest.Feature{Shape: shptest.Pt(float64(i), 1), Attrs: []any{id}}
	}
	shptest.Write(t, dir, tierPiecesFile(tier), shp.POINT, []shp.Field{shptest.Str("CABLE_ID")}, feats...)
}

func writeSegmentLayer(t *testing.T, dir string, rows ...[3]string) {
	t.Helper()
	fields := []shp.Field{shptest.Str("TYPE"), shptest.Str("GISTOOL_ID"), shptest.Str("ID")}
	feats := make([]shptest.Feature, len(rows))
	for i, row := range rows {
		feats[i] = shptest.Feature{Shape: shptest.Pt(float64(i), 2), Attrs: []any{row[0], row[1], row[2]}}
	}
	shptest.Write(t, dir, "OUT_UsedSegments.shp", shp.POINT, fields, feats...)
}

func writeSinglePoint(t *testing.T, dir, name string, x, y float64) {
	t.Helper()
	shptest.Write(t, dir, name, shp.POINT, []shp.Field{shptest.Str("ID")},
		shptest.Feature{Shape: shptest.Pt(x, y), Attrs: []any{"P1"}})
}

// writeClusterLayer writes a polygon cluster layer keyed by AGG_ID or
// CAB_GROUP, matching the layer's naming convention.
func writeClusterLayer(t *testing.T, dir, name string, squares ...[3]float64) {
	t.Helper()
	col := clusterIDColumn(name)
	feats := make([]shptest.Feature, len(squares))
	for i, s := range squares {
		feats[i] = shptest.Feature{
			Shape: shptest.Square(s[0], s[1], s[2]),
			Attrs: []any{i + 1},
		}
	}
	shptest.Write(t, dir, name, shp.POLYGON, []shp.Field{shptest.Num(col)}, feats...)
}

// writeValidWorkspace lays down a complete export where every check in
// the catalogue passes.
func writeValidWorkspace(t *testing.T, dir string) {
	t.Helper()
	writeClosureLayer(t, dir,
		closureRow{"AGG-1", "BE16", 0, "Feeder", "EQ-1", "1"},
		closureRow{"AGG-2", "OFDC", 0, "Distribution", "EQ-2", "2"},
		closureRow{"AGG-3", "BE16", 1, "Feeder", "EQ-3", "3"},
	)
	writeSpliceLayer(t, dir, "1", "1", "2")
	writeSegmentLayer(t, dir,
		[3]string{"AERIAL", "", "S-1"},
		[3]string{"IMPORTED", "G-77", "S-2"},
	)
	for _, tier := range cableTiers {
		writeCableLayer(t, dir, tier,
			cableRow{"1", "C-1", 12, 4, 7.5},
			cableRow{"2", "C-2", 24, 8, 9.0},
		)
		writePieceLayer(t, dir, tier, "1", "2", "2")
	}
	cfg := config.Default()
	for i, name := range cfg.ClusterLayers {
		base := float64(i * 100)
		writeClusterLayer(t, dir, name,
			[3]float64{base, 0, 2},
			[3]float64{base + 10, 0, 2},
		)
	}
	writeSinglePoint(t, dir, feederPointsFile, 0, 0)
	writeSinglePoint(t, dir, primPointsFile, 25, 25)
}
