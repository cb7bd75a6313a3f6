package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fibercheck/internal/format"
	"fibercheck/internal/store"
)

var runsFlags struct {
	dbPath string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded validation runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsFlags.dbPath, "db", store.DefaultDBPath(), "History database path")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(runsFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer st.Close()

	list, err := st.ListRuns()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No runs recorded. Use 'fibercheck validate --save' to record one.")
		return nil
	}

	t := format.NewTable(format.ASCII)
	t.Header("ID", "Source", "Started", "Checks", "Failed", "Indeterminate")
	for _, r := range list {
		t.Row(r.ID, format.Truncate(r.Source, 48), r.StartedAt,
			r.ChecksTotal, r.ChecksFailed, r.ChecksIndeterminate)
	}
	_, err = fmt.Fprintln(out, t.String())
	return err
}
