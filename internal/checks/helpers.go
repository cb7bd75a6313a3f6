package checks

import (
	"errors"
	"fmt"
	"strings"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// Layer file names within a workspace. The export tool owns these.
const (
	closuresFile     = "OUT_Closures.shp"
	splicesFile      = "OUT_Splices.shp"
	segmentsFile     = "OUT_UsedSegments.shp"
	feederCablesFile = "OUT_FeederCables.shp"
	feederPointsFile = "OUT_FeederPoints.shp"
	primPointsFile   = "OUT_PrimDistributionPoints.shp"
)

func tierCablesFile(tier string) string { return fmt.Sprintf("OUT_%sCables.shp", tier) }
func tierPiecesFile(tier string) string { return fmt.Sprintf("OUT_%sCablePieces.shp", tier) }

// report accumulates the diagnostic message of one check invocation,
// one line at a time.
type report struct {
	lines []string
}

func (r *report) addf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *report) add(line string) {
	r.lines = append(r.lines, line)
}

func (r *report) rule() {
	r.lines = append(r.lines, format.Rule())
}

func (r *report) String() string {
	return strings.Join(r.lines, "\n")
}

// openLayer loads a layer and verifies its required columns. On failure
// it returns a ready-made indeterminate diagnostic; the caller must
// return Indeterminate without running further.
func openLayer(e *Env, filename string, cols ...string) (*layer.Table, string) {
	tbl, err := layer.Open(e.Dir, filename)
	if err != nil {
		if errors.Is(err, layer.ErrNotFound) {
			return nil, fmt.Sprintf("%s %s not found in workspace: %s", format.ErrMark, filename, e.Dir)
		}
		return nil, fmt.Sprintf("%s reading %s: %v", format.ErrMark, filename, err)
	}
	if err := tbl.Require(cols...); err != nil {
		return nil, fmt.Sprintf("%s %s: %v", format.ErrMark, filename, err)
	}
	return tbl, ""
}
