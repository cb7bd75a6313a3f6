package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fibercheck/internal/checks"
	"fibercheck/internal/config"
	"fibercheck/internal/format"
	"fibercheck/internal/logging"
	"fibercheck/internal/report"
	"fibercheck/internal/store"
	"fibercheck/internal/workspace"
)

var validateFlags struct {
	checks     []string
	formatName string
	output     string
	configPath string
	tolerance  float64
	sequential bool
	workers    int
	save       bool
	dbPath     string
}

var validateCmd = &cobra.Command{
	Use:   "validate <workspace-dir|export.zip>",
	Short: "Run validation checks against a design export",
	Long: "Validate resolves the given path (a layer directory, an export root,\n" +
		"or a zipped bundle) and runs the selected checks against it.\n" +
		"Exit status: 0 all passed, 1 at least one check failed,\n" +
		"2 at least one check could not run.",
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringSliceVar(&validateFlags.checks, "checks", nil, "Check names to run (default: all)")
	f.StringVar(&validateFlags.formatName, "format", "text", "Output format (text|markdown|json)")
	f.StringVarP(&validateFlags.output, "output", "o", "", "Write output to file instead of stdout")
	f.StringVar(&validateFlags.configPath, "config", "", "Engine config file (YAML/JSON)")
	f.Float64Var(&validateFlags.tolerance, "tolerance", 0, "Override point co-location tolerance (CRS units)")
	f.BoolVar(&validateFlags.sequential, "sequential", false, "Run checks one at a time")
	f.IntVar(&validateFlags.workers, "workers", 0, "Max parallel checks (0 = number of CPUs)")
	f.BoolVar(&validateFlags.save, "save", false, "Record the run in the history database")
	f.StringVar(&validateFlags.dbPath, "db", store.DefaultDBPath(), "History database path")
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.New("validate")
	source := args[0]

	cfg := config.Default()
	if validateFlags.configPath != "" {
		c, err := config.LoadFromPath(validateFlags.configPath)
		if err != nil {
			return err
		}
		cfg = c
	}
	if validateFlags.tolerance > 0 {
		cfg.PointTolerance = validateFlags.tolerance
	}

	dir, cleanup, err := workspace.Resolve(source)
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	defer cleanup()
	log.Info("workspace resolved", "source", source, "dir", dir)

	env := &checks.Env{Dir: dir, Config: cfg, Log: log}
	opts := checks.Options{Sequential: validateFlags.sequential, Workers: validateFlags.workers}

	started := time.Now().UTC()
	results := checks.Run(cmd.Context(), env, validateFlags.checks, opts)
	finished := time.Now().UTC()
	log.Info("validation finished", "checks", len(results), "elapsed", finished.Sub(started))

	doc := &report.Document{
		Filename: filepath.Base(source),
		Results:  results,
	}
	if err := emitValidation(cmd, doc); err != nil {
		return err
	}

	if validateFlags.save {
		st, err := store.Open(validateFlags.dbPath)
		if err != nil {
			return fmt.Errorf("open history db: %w", err)
		}
		defer st.Close()
		id, err := st.SaveRun(&store.Run{
			Source:     source,
			Workspace:  dir,
			StartedAt:  started.Format(time.RFC3339),
			FinishedAt: finished.Format(time.RFC3339),
			Results:    results,
		})
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved run #%d\n", id)
	}

	if doc.Failed() > 0 {
		exitCode = 1
	} else if doc.Indeterminate() > 0 {
		exitCode = 2
	}
	return nil
}

func emitValidation(cmd *cobra.Command, doc *report.Document) error {
	out := cmd.OutOrStdout()
	if validateFlags.output != "" {
		f, err := os.Create(validateFlags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch validateFlags.formatName {
	case "text":
		return writeText(out, doc)
	case "markdown":
		_, err := fmt.Fprint(out, report.Markdown(doc))
		return err
	case "json":
		return report.WriteJSON(out, doc)
	default:
		return fmt.Errorf("unknown format %q (want text, markdown or json)", validateFlags.formatName)
	}
}

func writeText(out io.Writer, doc *report.Document) error {
	for _, r := range doc.Results {
		fmt.Fprintf(out, "%s %s: %s\n", report.Mark(r.Status), r.Name, r.Status)
		if msg := strings.TrimSpace(r.Message); msg != "" {
			fmt.Fprintln(out, msg)
		}
		fmt.Fprintln(out, format.Rule())
	}
	_, err := fmt.Fprintf(out, "%d passed, %d failed, %d indeterminate\n",
		doc.Passed(), doc.Failed(), doc.Indeterminate())
	return err
}
