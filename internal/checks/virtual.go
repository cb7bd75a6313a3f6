package checks

import (
	"fibercheck/internal/format"
)

// nonVirtualLayers are the closure tiers that must never be virtual.
var nonVirtualLayers = map[string]bool{
	"PrimDistribution": true,
	"Distribution":     true,
	"Drop":             true,
}

// checkNonVirtualClosures finds PrimDistribution, Distribution and Drop
// closures incorrectly marked virtual. Only feeder-level closures may
// be virtual.
func checkNonVirtualClosures(e *Env) (Status, string) {
	var r report
	r.add("Validating non-virtual closures")

	closures, problem := openLayer(e, closuresFile, "LAYER", "VIRTUAL", "EQ_ID")
	if problem != "" {
		return Indeterminate, problem
	}

	var offenders []int
	for i := 0; i < closures.Len(); i++ {
		virtual, _ := closures.Int(i, "VIRTUAL")
		if virtual == 1 && nonVirtualLayers[closures.Value(i, "LAYER")] {
			offenders = append(offenders, i)
		}
	}

	if len(offenders) == 0 {
		r.addf("%s All PrimDistribution, Distribution and Drop closures are non-virtual as expected.", format.PassMark)
		return Pass, r.String()
	}

	r.addf("%s Found %d closures incorrectly marked as virtual:", format.FailMark, len(offenders))
	r.add("These closure types should never be virtual:")
	r.add("- PrimDistribution")
	r.add("- Distribution")
	r.add("- Drop")
	r.add("")
	t := format.NewTable(format.ASCII)
	t.Header("EQ_ID", "LAYER", "VIRTUAL")
	for _, i := range offenders {
		t.Row(closures.Value(i, "EQ_ID"), closures.Value(i, "LAYER"), closures.Value(i, "VIRTUAL"))
	}
	r.add(t.String())
	return Fail, r.String()
}
