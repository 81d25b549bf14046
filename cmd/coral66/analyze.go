package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coral66/internal/config"
	"coral66/internal/diagfmt"
	"coral66/internal/driver"
)

var analyzeCmd = &cobra.Command{
	Use:          "analyze [flags] <file|dir>",
	Short:        "Analyze CORAL 66 sources and report diagnostics",
	Long:         `Analyze runs the full pipeline over one file or every *.cor/*.c66 file under a directory`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("jobs", 0, "parallel workers (0 = one per CPU)")
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	analyzeCmd.Flags().Bool("disk-cache", false, "reuse results for unchanged files via the disk cache")
	analyzeCmd.Flags().Bool("no-progress", false, "disable the progress display")
}

// fileReport is one file in the JSON output.
type fileReport struct {
	File        string                   `json:"file"`
	Error       string                   `json:"error,omitempty"`
	Cached      bool                     `json:"cached,omitempty"`
	Symbols     int                      `json:"symbols"`
	References  int                      `json:"references"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	Count       int                      `json:"count"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs := cfg.Analyze.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	maxDiagnostics := cfg.Server.MaxDiagnostics
	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		maxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	}

	files, err := driver.ListSourceFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no CORAL 66 source files found")
		return nil
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if withCache, _ := cmd.Flags().GetBool("disk-cache"); withCache {
		cache, err := driver.OpenDiskCache("coral66")
		if err != nil {
			return fmt.Errorf("open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	showProgress := !noProgress && format == "pretty" && len(files) > 1 && isTerminal(os.Stdout)

	var results []driver.FileResult
	if showProgress {
		results, err = runAnalyzeWithUI(cmd.Context(), "coral66 analyze", files, opts)
	} else {
		results, err = driver.AnalyzeAll(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSONReport(cmd, results)
	}
	return writePrettyReport(cmd, results)
}

func writePrettyReport(cmd *cobra.Command, results []driver.FileResult) error {
	color := useColor(cmd, os.Stdout)
	opts := diagfmt.PrettyOpts{Color: color, ShowNotes: true}

	var total, errors, cached, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		if res.FromCache {
			cached++
		}
		total += res.Bag.Len()
		if res.Bag.HasErrors() {
			errors++
		}
		diagfmt.Pretty(cmd.OutOrStdout(), res.Bag, res.File, opts)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s), %d diagnostic(s), %d with errors", len(results), total, errors)
	if cached > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d from cache", cached)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be read", failed)
	}
	if errors > 0 {
		return fmt.Errorf("%d file(s) had errors", errors)
	}
	return nil
}

func writeJSONReport(cmd *cobra.Command, results []driver.FileResult) error {
	reports := make([]fileReport, 0, len(results))
	var failed, errors int
	for _, res := range results {
		report := fileReport{File: res.Path, Cached: res.FromCache}
		if res.Err != nil {
			failed++
			report.Error = res.Err.Error()
			reports = append(reports, report)
			continue
		}
		out := diagfmt.BuildDiagnosticsOutput(res.Bag, res.File, diagfmt.JSONOpts{IncludePositions: true})
		report.Symbols = res.SymbolCount
		report.References = res.ReferenceCount
		report.Diagnostics = out.Diagnostics
		report.Count = out.Count
		if res.Bag.HasErrors() {
			errors++
		}
		reports = append(reports, report)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be read", failed)
	}
	if errors > 0 {
		return fmt.Errorf("%d file(s) had errors", errors)
	}
	return nil
}
