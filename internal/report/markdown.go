package report

import (
	"fmt"
	"strings"

	"fibercheck/internal/format"
)

// Markdown renders the document as a Markdown report: a summary table
// followed by one section per check with its full diagnostic message.
func Markdown(d *Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Validation Report: %s\n\n", d.Filename)
	fmt.Fprintf(&b, "%d passed, %d failed, %d indeterminate\n\n",
		d.Passed(), d.Failed(), d.Indeterminate())

	t := format.NewTable(format.Markdown)
	t.Header("Check", "Status")
	for _, r := range d.Results {
		t.Row(r.Name, Mark(r.Status)+" "+r.Status.String())
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	for _, r := range d.Results {
		fmt.Fprintf(&b, "\n## %s %s\n\n", Mark(r.Status), r.Name)
		fmt.Fprintf(&b, "Status: **%s**\n\n", r.Status)
		if msg := strings.TrimSpace(r.Message); msg != "" {
			// Messages embed fixed-width diagnostic tables; a fence
			// keeps them aligned.
			fmt.Fprintf(&b, "```\n%s\n```\n", msg)
		}
	}
	return b.String()
}
