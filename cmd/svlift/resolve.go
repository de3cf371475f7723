package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svlift/internal/diagfmt"
	"svlift/internal/driver"
	"svlift/internal/source"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] path",
	Short: "Resolve fixture token streams",
	Long: `Resolve reads one fixture file or a directory of fixtures and prints
the resolved declarations, port lists, instantiations and statements`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().Bool("traces", false, "include trace markers in the output")
	resolveCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	resolveCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 uses all CPUs)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	path := args[0]
	showTraces, _ := cmd.Flags().GetBool("traces")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	cfg, err := driver.LoadConfigFrom(".")
	if err != nil {
		return err
	}
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if maxDiagnostics <= 0 {
		maxDiagnostics = cfg.Resolve.MaxDiagnostics
	}
	if jobs == 0 {
		jobs = cfg.Resolve.Jobs
	}
	showTraces = showTraces || cfg.Resolve.ShowTraces

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return resolveDir(cmd, path, driver.Options{
			MaxDiagnostics: maxDiagnostics,
			Jobs:           jobs,
			ShowTraces:     showTraces,
			Cache:          openCache(cfg, noCache),
		}, quiet)
	}
	return resolveFile(cmd, path, maxDiagnostics, showTraces, quiet)
}

func openCache(cfg driver.Config, noCache bool) *driver.DiskCache {
	if noCache || !cfg.Cache.Enabled {
		return nil
	}
	cache, err := driver.OpenDiskCache("svlift", cfg.Cache.Dir)
	if err != nil {
		// A missing cache only costs time, not correctness.
		fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		return nil
	}
	return cache
}

func resolveFile(cmd *cobra.Command, path string, maxDiagnostics int, showTraces, quiet bool) error {
	fileSet := source.NewFileSet()
	res, err := driver.ResolveFile(fileSet, path, maxDiagnostics)
	if err != nil {
		return err
	}

	res.Bag.Sort()
	if res.Bag.Len() > 0 && !quiet {
		diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.Opts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	driver.RenderResult(cmd.OutOrStdout(), res, diagfmt.Opts{
		Color:      useColor(cmd, os.Stdout),
		ShowTraces: showTraces,
	})
	if res.HasErrors() {
		return fmt.Errorf("%s: resolution failed", path)
	}
	return nil
}

func resolveDir(cmd *cobra.Command, dir string, opts driver.Options, quiet bool) error {
	results, err := driver.ResolveDir(cmd.Context(), dir, opts)
	if err != nil {
		return err
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "== %s\n", res.Path)
		fmt.Fprint(out, res.Rendered)
		if res.DiagLines != "" && !quiet {
			fmt.Fprint(os.Stderr, res.DiagLines)
		}
		if res.HasErrors {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fixture files failed", failed, len(results))
	}
	return nil
}
