package checks

import (
	"sort"

	"fibercheck/internal/format"
)

// checkOSCDuplicates verifies that no LINKED_AGG value appears on more
// than one closure. Duplicated OSCs mean two closures claim the same
// aggregation point.
func checkOSCDuplicates(e *Env) (Status, string) {
	tbl, problem := openLayer(e, closuresFile, "LINKED_AGG")
	if problem != "" {
		return Indeterminate, problem
	}

	counts := make(map[string]int)
	var order []string
	for i := 0; i < tbl.Len(); i++ {
		v := tbl.Value(i, "LINKED_AGG")
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	var dupes []string
	total := 0
	for _, v := range order {
		if counts[v] >= 2 {
			dupes = append(dupes, v)
			total += counts[v]
		}
	}

	var r report
	if len(dupes) == 0 {
		r.addf("%s Everything is okay - no duplicated OSCs found", format.PassMark)
		return Pass, r.String()
	}

	sort.SliceStable(dupes, func(i, j int) bool { return counts[dupes[i]] > counts[dupes[j]] })

	r.addf("%s Duplicated OSCs detected", format.WarnMark)
	r.addf("Total duplicated entries: %d", total)
	r.add("")
	r.add("Duplicate occurrences:")
	t := format.NewTable(format.ASCII)
	t.Header("OSC Value", "Duplicate Count")
	for _, v := range dupes {
		t.Row(v, counts[v])
	}
	r.add(t.String())
	return Fail, r.String()
}
