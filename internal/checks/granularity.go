package checks

import (
	"errors"
	"fmt"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// granularityTiers is the reporting order of the granularity check.
var granularityTiers = []string{"Feeder", "Drop", "Distribution", "PrimDistribution"}

// checkCableGranularity validates that CABLEGRAN and BUNDLEGRAN are set
// on every cable: -1 is the planning tool's "not assigned" marker and
// must not survive into an export. A tier whose cable file is absent is
// skipped with a warning; a present file missing either field fails.
func checkCableGranularity(e *Env) (Status, string) {
	var r report
	r.add("Checking CABLEGRAN and BUNDLEGRAN values in cable layers")
	r.add("")

	hasIssues := false
	for _, tier := range granularityTiers {
		file := tierCablesFile(tier)
		tbl, err := layer.Open(e.Dir, file)
		if err != nil {
			if errors.Is(err, layer.ErrNotFound) {
				r.addf("%s Missing: %s", format.WarnMark, file)
				continue
			}
			return Indeterminate, fmt.Sprintf("%s reading %s: %v", format.ErrMark, file, err)
		}

		if !tbl.HasColumn("CABLEGRAN") || !tbl.HasColumn("BUNDLEGRAN") {
			r.addf("%s %s is missing CABLEGRAN or BUNDLEGRAN fields.", format.FailMark, file)
			hasIssues = true
			continue
		}

		var offenders []int
		for i := 0; i < tbl.Len(); i++ {
			cg, _ := tbl.Int(i, "CABLEGRAN")
			bg, _ := tbl.Int(i, "BUNDLEGRAN")
			if cg == -1 || bg == -1 {
				offenders = append(offenders, i)
			}
		}

		if len(offenders) > 0 {
			hasIssues = true
			r.addf("%s %s: %d invalid rows:", format.FailMark, file, len(offenders))
			t := format.NewTable(format.ASCII)
			t.Header("CABLE_ID", "CABLEGRAN", "BUNDLEGRAN")
			for _, i := range offenders {
				if t.Len() == 5 {
					break
				}
				t.Row(tbl.Value(i, "CABLE_ID"), tbl.Value(i, "CABLEGRAN"), tbl.Value(i, "BUNDLEGRAN"))
			}
			r.add(t.String())
		} else {
			r.addf("%s %s: all granularity values are valid.", format.PassMark, file)
		}
		r.rule()
	}

	if hasIssues {
		return Fail, r.String()
	}
	return Pass, r.String()
}
