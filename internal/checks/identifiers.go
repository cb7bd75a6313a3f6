package checks

import (
	"errors"
	"fmt"
	"strconv"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// checkIdentifiers verifies that feeder cables and non-virtual closures
// carry a populated IDENTIFIER. This is a read-only check: earlier
// generations of the tooling rewrote the feeder layer in place during
// validation; this engine only reports.
func checkIdentifiers(e *Env) (Status, string) {
	var r report
	r.add("Checking identifiers on feeder cables and closures")
	hasIssues := false

	feeder, err := layer.Open(e.Dir, feederCablesFile)
	if err != nil {
		if errors.Is(err, layer.ErrNotFound) {
			return Indeterminate, fmt.Sprintf("%s %s not found in workspace: %s", format.ErrMark, feederCablesFile, e.Dir)
		}
		return Indeterminate, fmt.Sprintf("%s reading %s: %v", format.ErrMark, feederCablesFile, err)
	}

	if !feeder.HasColumn("IDENTIFIER") {
		// A feeder layer without the column at all is a design defect,
		// not a broken workspace.
		r.addf("%s Feeder cables: IDENTIFIER column missing entirely", format.WarnMark)
		hasIssues = true
	} else {
		empty := 0
		for i := 0; i < feeder.Len(); i++ {
			if feeder.Empty(i, "IDENTIFIER") {
				empty++
			}
		}
		if empty > 0 {
			plural := ""
			if empty != 1 {
				plural = "s"
			}
			r.addf("%s Feeder cables: %d record%s have empty IDENTIFIER and require attention",
				format.WarnMark, empty, plural)
			hasIssues = true
		} else {
			r.addf("%s Feeder cables: all IDENTIFIER values are populated", format.PassMark)
		}
	}
	r.rule()

	closures, problem := openLayer(e, closuresFile, "IDENTIFIER", "VIRTUAL")
	if problem != "" {
		return Indeterminate, problem
	}

	var offenders []int
	for i := 0; i < closures.Len(); i++ {
		virtual, _ := closures.Int(i, "VIRTUAL")
		if virtual == 0 && closures.Empty(i, "IDENTIFIER") {
			offenders = append(offenders, i)
		}
	}
	if len(offenders) > 0 {
		hasIssues = true
		r.addf("%s Problem found in closures: %d non-virtual closures with empty IDENTIFIER",
			format.WarnMark, len(offenders))
		for _, i := range offenders {
			r.addf("   • closure %s", closureRef(closures, i))
		}
	} else {
		r.addf("%s All non-virtual closures have valid IDENTIFIER values", format.PassMark)
	}

	if hasIssues {
		return Fail, r.String()
	}
	return Pass, r.String()
}

// closureRef names a closure row by its ID attribute, falling back to
// the row index.
func closureRef(t *layer.Table, row int) string {
	if t.HasColumn("ID") && !t.Empty(row, "ID") {
		return "ID " + t.Value(row, "ID")
	}
	return "row " + strconv.Itoa(row)
}
