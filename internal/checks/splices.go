package checks

import (
	"fibercheck/internal/format"
)

// reportSpliceCounts lists closures whose splice count exceeds the
// per-closure-type limit. This is a report, not a gate: the status is
// always Pass when both layers load, even when violations are listed.
// Downstream renderers rely on that polarity.
func reportSpliceCounts(e *Env) (Status, string) {
	var r report
	r.add("Reporting splices per closure type")

	closures, problem := openLayer(e, closuresFile, "IDENTIFIER", "ID")
	if problem != "" {
		return Indeterminate, problem
	}
	splices, problem := openLayer(e, splicesFile, "ID")
	if problem != "" {
		return Indeterminate, problem
	}

	// Splices reference their closure through the shared ID column.
	countByClosure := make(map[string]int)
	for i := 0; i < splices.Len(); i++ {
		countByClosure[splices.Value(i, "ID")]++
	}

	limits := e.cfg().SpliceLimits
	type violation struct {
		closureType string
		closureID   string
		count       int
		limit       int
	}
	var violations []violation
	for i := 0; i < closures.Len(); i++ {
		closureType := closures.Value(i, "IDENTIFIER")
		limit, known := limits[closureType]
		if !known {
			// Types without a listed limit are never flagged.
			continue
		}
		id := closures.Value(i, "ID")
		if n := countByClosure[id]; n > limit {
			violations = append(violations, violation{closureType, id, n, limit})
		}
	}

	if len(violations) == 0 {
		r.addf("%s All closures are within their maximum splice limits.", format.PassMark)
		return Pass, r.String()
	}

	t := format.NewTable(format.ASCII)
	t.Header("Closure Type", "Closure ID", "Splices", "Limit")
	for _, v := range violations {
		t.Row(v.closureType, v.closureID, v.count, v.limit)
	}
	r.add(t.String())
	r.addf("%s Found %d closure(s) exceeding splice limits.", format.FailMark, len(violations))
	return Pass, r.String()
}
