// fibercheck validates Comsof FTTH design exports: a fixed catalogue of
// checks over the OUT_* shapefile layers, with reports and run history.
//
// Usage:
//
//	fibercheck validate <workspace-dir|export.zip> [--checks a,b] [--format text|markdown|json]
//	fibercheck checks
//	fibercheck runs
//	fibercheck report --run <id> [--format markdown|html|pdf] -o <file>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
