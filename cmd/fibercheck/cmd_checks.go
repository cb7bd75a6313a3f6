package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fibercheck/internal/checks"
	"fibercheck/internal/format"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the check catalogue",
	RunE:  runChecks,
}

func runChecks(cmd *cobra.Command, _ []string) error {
	t := format.NewTable(format.ASCII)
	t.Header("Check", "Layers read")
	for _, c := range checks.Catalogue() {
		t.Row(c.Name, strings.Join(c.Layers, ", "))
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return err
}
