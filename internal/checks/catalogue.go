package checks

import (
	"log/slog"

	"fibercheck/internal/config"
)

// Check names as they appear in requests, reports and the stored
// catalogue. These are part of the external contract.
const (
	NameOSCDuplicates     = "OSC Duplicates Check"
	NameClusterOverlap    = "Cluster Overlap Check"
	NameCableGranularity  = "Cable Granularity Check"
	NameNonVirtualClosure = "Non-virtual Closure Validation"
	NamePointLocation     = "Point Location Validation"
	NameCableDiameter     = "Cable Diameter Validation"
	NameCableReference    = "Cable Reference Validation"
	NameShapefileProcess  = "Shapefile Processing"
	NameGistoolID         = "GISTOOL_ID Validation"
	NameSpliceCount       = "Splice Count Report"
)

// Env carries everything a check needs: the resolved workspace
// directory, the engine configuration and a logger. Checks only read
// from the workspace; none mutate it.
type Env struct {
	Dir    string
	Config *config.Config
	Log    *slog.Logger
}

func (e *Env) cfg() *config.Config {
	if e.Config != nil {
		return e.Config
	}
	return config.Default()
}

// Check is one catalogue entry: a name, the layers it reads (for
// listings), and the function implementing it.
type Check struct {
	Name   string
	Layers []string
	run    func(e *Env) (Status, string)
}

// Catalogue returns the full check catalogue in the default execution
// order. The set is fixed at build time.
func Catalogue() []Check {
	return []Check{
		{NameOSCDuplicates, []string{closuresFile}, checkOSCDuplicates},
		{NameClusterOverlap, []string{"OUT_*Clusters.shp"}, checkClusterOverlaps},
		{NameCableGranularity, []string{"OUT_*Cables.shp"}, checkCableGranularity},
		{NameNonVirtualClosure, []string{closuresFile}, checkNonVirtualClosures},
		{NamePointLocation, []string{feederPointsFile, primPointsFile}, checkPointLocations},
		{NameCableDiameter, []string{"OUT_*Cables.shp"}, checkCableDiameters},
		{NameCableReference, []string{"OUT_*Cables.shp", "OUT_*CablePieces.shp"}, checkCableReferences},
		{NameShapefileProcess, []string{feederCablesFile, closuresFile}, checkIdentifiers},
		{NameGistoolID, []string{segmentsFile}, checkGistoolID},
		{NameSpliceCount, []string{closuresFile, splicesFile}, reportSpliceCounts},
	}
}

// Names returns the catalogue names in default order.
func Names() []string {
	cat := Catalogue()
	names := make([]string, len(cat))
	for i, c := range cat {
		names[i] = c.Name
	}
	return names
}

// Lookup resolves a check by its catalogue name.
func Lookup(name string) (Check, bool) {
	for _, c := range Catalogue() {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}
