package checks

import (
	"fibercheck/internal/format"
)

// checkGistoolID verifies that aerial and buried segments carry no
// GISTOOL_ID: the planning tool only assigns those IDs to segments
// imported from the GIS source, and aerial/buried routes are generated.
func checkGistoolID(e *Env) (Status, string) {
	segs, problem := openLayer(e, segmentsFile, "TYPE", "GISTOOL_ID", "ID")
	if problem != "" {
		return Indeterminate, problem
	}

	var offenders []int
	for i := 0; i < segs.Len(); i++ {
		typ := segs.Value(i, "TYPE")
		if (typ == "AERIAL" || typ == "BURIED") && !segs.Empty(i, "GISTOOL_ID") {
			offenders = append(offenders, i)
		}
	}

	var r report
	if len(offenders) == 0 {
		r.addf("%s All aerial and buried segments have empty GISTOOL_ID values", format.PassMark)
		return Pass, r.String()
	}

	r.addf("%s Issues found in UsedSegments:", format.WarnMark)
	r.addf("Found %d aerial/buried segments with non-empty GISTOOL_ID", len(offenders))
	r.add("GISTOOL_ID should be empty for aerial/buried segments.")
	r.add("Showing first 5 problematic segments:")
	t := format.NewTable(format.ASCII)
	t.Header("TYPE", "GISTOOL_ID", "ID")
	for _, i := range offenders {
		if t.Len() == 5 {
			break
		}
		t.Row(segs.Value(i, "TYPE"), "'"+segs.Value(i, "GISTOOL_ID")+"'", segs.Value(i, "ID"))
	}
	r.add(t.String())
	return Fail, r.String()
}
