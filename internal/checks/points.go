package checks

import (
	"math"

	"fibercheck/internal/format"
)

// checkPointLocations validates that the feeder point and the primary
// distribution point are not co-located. Both layers come out of one
// export and share its CRS; the distance is Euclidean in that CRS's
// units. Fails strictly below the tolerance, so a distance exactly at
// the tolerance passes.
func checkPointLocations(e *Env) (Status, string) {
	var r report
	r.add("Validating feeder and primary distribution point locations")

	feeder, problem := openLayer(e, feederPointsFile)
	if problem != "" {
		return Indeterminate, problem
	}
	prim, problem := openLayer(e, primPointsFile)
	if problem != "" {
		return Indeterminate, problem
	}

	if feeder.Len() != 1 {
		r.addf("%s Warning: %s has %d features (expected 1)", format.WarnMark, feederPointsFile, feeder.Len())
	}
	if prim.Len() != 1 {
		r.addf("%s Warning: %s has %d features (expected 1)", format.WarnMark, primPointsFile, prim.Len())
	}

	fx, fy, fok := feeder.Point(0)
	px, py, pok := prim.Point(0)
	if !fok || !pok {
		r.addf("%s Cannot perform validation - one or both point layers are empty", format.ErrMark)
		return Indeterminate, r.String()
	}

	tolerance := e.cfg().PointTolerance
	distance := math.Hypot(fx-px, fy-py)

	if distance < tolerance {
		r.addf("%s CRITICAL: feeder and primary distribution points are too close!", format.WarnMark)
		r.addf("Distance between points: %.6f units (tolerance: %g units)", distance, tolerance)
		r.addf("Feeder point location: X=%.6f, Y=%.6f", fx, fy)
		r.addf("Primary distribution point location: X=%.6f, Y=%.6f", px, py)
		r.addf("%s These points should not be co-located. Please verify in GIS software.", format.FailMark)
		return Fail, r.String()
	}

	r.addf("%s Validation passed - points are sufficiently separated", format.PassMark)
	r.addf("Distance between points: %.6f units (minimum required: %g units)", distance, tolerance)
	return Pass, r.String()
}
