package checks

import (
	"errors"
	"fmt"
	"strings"

	"fibercheck/internal/format"
	"fibercheck/internal/layer"
)

// cableTiers are the network tiers that ship a Cables/CablePieces layer
// pair, in reporting order.
var cableTiers = []string{"Feeder", "Drop", "PrimDistribution", "Distribution"}

// checkCableReferences verifies referential integrity between cable
// pieces and cables: every piece's CABLE_ID must exist in the tier's
// cable layer. Missing tier files are warnings, not failures; not
// every design uses all four tiers.
func checkCableReferences(e *Env) (Status, string) {
	var r report
	r.add("Checking CABLE_ID references for all cable tiers")

	hasIssues := false
	for _, tier := range cableTiers {
		cableFile := tierCablesFile(tier)
		pieceFile := tierPiecesFile(tier)

		cables, err := layer.Open(e.Dir, cableFile)
		if err != nil {
			if errors.Is(err, layer.ErrNotFound) {
				r.addf("%s Cable file missing: %s", format.WarnMark, cableFile)
				continue
			}
			return Indeterminate, fmt.Sprintf("%s reading %s: %v", format.ErrMark, cableFile, err)
		}
		pieces, err := layer.Open(e.Dir, pieceFile)
		if err != nil {
			if errors.Is(err, layer.ErrNotFound) {
				r.addf("%s Cable piece file missing: %s", format.WarnMark, pieceFile)
				continue
			}
			return Indeterminate, fmt.Sprintf("%s reading %s: %v", format.ErrMark, pieceFile, err)
		}
		if err := cables.Require("CABLE_ID"); err != nil {
			return Indeterminate, fmt.Sprintf("%s %s: %v", format.ErrMark, cableFile, err)
		}
		if err := pieces.Require("CABLE_ID"); err != nil {
			return Indeterminate, fmt.Sprintf("%s %s: %v", format.ErrMark, pieceFile, err)
		}

		// Referenced-side key set once, then a single pass over the
		// referencing side.
		valid := make(map[string]struct{}, cables.Len())
		for i := 0; i < cables.Len(); i++ {
			valid[cables.Value(i, "CABLE_ID")] = struct{}{}
		}

		invalidPieces := 0
		seen := make(map[string]struct{})
		var invalidIDs []string
		for i := 0; i < pieces.Len(); i++ {
			id := pieces.Value(i, "CABLE_ID")
			if _, ok := valid[id]; ok {
				continue
			}
			invalidPieces++
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				invalidIDs = append(invalidIDs, id)
			}
		}

		if invalidPieces == 0 {
			r.addf("%s %sCablePieces: all CABLE_IDs are valid.", format.PassMark, tier)
		} else {
			hasIssues = true
			r.addf("%s %sCablePieces: found %d pieces with %d invalid CABLE_IDs",
				format.FailMark, tier, invalidPieces, len(invalidIDs))
			shown := invalidIDs
			if len(shown) > 10 {
				shown = shown[:10]
			}
			r.addf("Invalid CABLE_IDs: %s", strings.Join(shown, ", "))
			if len(invalidIDs) > 10 {
				r.addf("Showing first 10 of %d invalid IDs", len(invalidIDs))
			}
		}
		r.rule()
	}

	if hasIssues {
		return Fail, r.String()
	}
	return Pass, r.String()
}
