package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"monkey/internal/driver"
	"monkey/internal/export"
	"monkey/internal/watch"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.mk|directory>...",
	Short: "Parse Monkey source files and print their syntax trees",
	Long: `Parse analyzes Monkey source files, or every source file in a directory, and prints
each syntax tree. Diagnostics go to stderr.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|msgpack)")
	parseCmd.Flags().Bool("values", false, "parse let and return values as expressions")
	parseCmd.Flags().Bool("watch", false, "re-parse files when they change")
	parseCmd.Flags().Bool("crosscheck", false, "compare every tree with the reference grammar (implies --values)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	format := s.cfg.Output.Format
	if format != "pretty" {
		f, err := export.ParseFormat(format)
		if err != nil {
			return err
		}
		if f.Binary() && isTerminal(os.Stdout) {
			return fmt.Errorf("refusing to write %s to a terminal; redirect stdout", f)
		}
	}

	files, err := driver.ListFiles(args, s.cfg.Check.Extensions)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := s.driverOptions()
	results, err := driver.ParseFiles(ctx, files, opts)
	if err != nil {
		return err
	}

	failed := false
	for _, r := range results {
		if printParseResult(s, format, r, len(results) > 1) {
			failed = true
		}
	}

	watchFlag, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	if watchFlag {
		return watchFiles(ctx, s, format, files, opts)
	}

	if failed {
		return errDiagnostics
	}
	return nil
}

// printParseResult writes the tree to stdout and problems to stderr. It reports whether
// the file had problems.
func printParseResult(s *settings, format string, r driver.Result, header bool) bool {
	failed := reportResult(os.Stderr, r, s.cfg.Output.MaxDiagnostics)
	if err := writeTree(os.Stdout, format, r, header); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, err)
		return true
	}
	return failed
}

func watchFiles(ctx context.Context, s *settings, format string, files []string, opts driver.Options) error {
	w, err := watch.New(files, watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(os.Stderr, "watching %d files, press Ctrl+C to stop\n", len(files))
	return w.Run(ctx, func(path string) {
		printParseResult(s, format, driver.ParseFile(path, opts), true)
	})
}
