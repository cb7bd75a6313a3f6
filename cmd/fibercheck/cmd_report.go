package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fibercheck/internal/report"
	"fibercheck/internal/store"
)

var reportFlags struct {
	runID      int64
	formatName string
	output     string
	dbPath     string
}

var reportCmd = &cobra.Command{
	Use:   "report [artifact.json]",
	Short: "Render a recorded run or a JSON artifact as Markdown, HTML, JSON or PDF",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	f := reportCmd.Flags()
	f.Int64Var(&reportFlags.runID, "run", 0, "Run ID to render")
	f.StringVar(&reportFlags.formatName, "format", "markdown", "Report format (markdown|html|json|pdf)")
	f.StringVarP(&reportFlags.output, "output", "o", "", "Write output to file instead of stdout")
	f.StringVar(&reportFlags.dbPath, "db", store.DefaultDBPath(), "History database path")
}

func runReport(cmd *cobra.Command, args []string) error {
	var doc *report.Document
	switch {
	case len(args) == 1:
		var err error
		if doc, err = loadArtifact(args[0]); err != nil {
			return err
		}
	case reportFlags.runID != 0:
		st, err := store.Open(reportFlags.dbPath)
		if err != nil {
			return fmt.Errorf("open history db: %w", err)
		}
		defer st.Close()

		run, err := st.GetRun(reportFlags.runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("run #%d not found", reportFlags.runID)
		}
		doc = &report.Document{
			Filename: filepath.Base(run.Source),
			Results:  run.Results,
		}
	default:
		return fmt.Errorf("pass --run <id> or a JSON artifact path")
	}

	var data []byte
	var err error
	switch reportFlags.formatName {
	case "markdown":
		data = []byte(report.Markdown(doc))
	case "html":
		data, err = report.HTML(doc)
		if err != nil {
			return err
		}
	case "json":
		if reportFlags.output == "" {
			return report.WriteJSON(cmd.OutOrStdout(), doc)
		}
		f, err := os.Create(reportFlags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		return report.WriteJSON(f, doc)
	case "pdf":
		if reportFlags.output == "" {
			return fmt.Errorf("pdf output requires --output")
		}
		data, err = report.PDF(cmd.Context(), doc)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want markdown, html, json or pdf)", reportFlags.formatName)
	}

	if reportFlags.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(reportFlags.output, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s report to %s\n", reportFlags.formatName, reportFlags.output)
	return nil
}

// loadArtifact reads a Document from a JSON artifact written by
// validate --format json.
func loadArtifact(path string) (*report.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	doc, err := report.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
