package checks

import (
	"errors"
	"fmt"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// diameterTiers are the cable layers with a physical diameter. Drop
// cables have no DIAMETER attribute in the export and are excluded.
var diameterTiers = []string{"Distribution", "Feeder", "PrimDistribution"}

// checkCableDiameters validates that every cable has a non-zero
// DIAMETER. Files are evaluated independently: one tier's problems
// never block the others. The check is indeterminate only when no tier
// file could be evaluated at all.
func checkCableDiameters(e *Env) (Status, string) {
	var r report
	r.add("Validating cable diameters")

	hasIssues := false
	evaluated := 0
	for _, tier := range diameterTiers {
		file := tierCablesFile(tier)
		tbl, err := layer.Open(e.Dir, file)
		if err != nil {
			if errors.Is(err, layer.ErrNotFound) {
				r.addf("%s %s not found in workspace", format.ErrMark, file)
				continue
			}
			r.addf("%s reading %s: %v", format.ErrMark, file, err)
			continue
		}
		if !tbl.HasColumn("DIAMETER") {
			r.addf("%s %s is missing DIAMETER column", format.ErrMark, file)
			continue
		}
		evaluated++

		var offenders []int
		for i := 0; i < tbl.Len(); i++ {
			d, ok := tbl.Float(i, "DIAMETER")
			if !ok || d == 0 {
				offenders = append(offenders, i)
			}
		}

		if len(offenders) == 0 {
			r.addf("%s %s: all cables have valid diameters", format.PassMark, file)
			continue
		}

		hasIssues = true
		r.addf("%s PROBLEM: found %d cables with invalid diameters in %s", format.FailMark, len(offenders), file)
		r.add("Cables must have non-zero diameter values.")
		t := format.NewTable(format.ASCII)
		t.Header("CABLE_ID", "DIAMETER")
		for _, i := range offenders {
			if t.Len() == 5 {
				break
			}
			t.Row(tbl.Value(i, "CABLE_ID"), tbl.Value(i, "DIAMETER"))
		}
		r.add(t.String())
	}

	if evaluated == 0 {
		return Indeterminate, fmt.Sprintf("%s no cable layers could be evaluated in workspace: %s", format.ErrMark, e.Dir)
	}
	if hasIssues {
		return Fail, r.String()
	}
	return Pass, r.String()
}
