package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"monkey/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.mk|directory>...",
	Short: "Report diagnostics for Monkey source files",
	Long:  `Check parses every given file, or every source file in a directory, and prints only diagnostics`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("values", false, "parse let and return values as expressions")
	checkCmd.Flags().Bool("crosscheck", false, "compare every tree with the reference grammar (implies --values)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	files, err := driver.ListFiles(args, s.cfg.Check.Extensions)
	if err != nil {
		return err
	}

	results, err := driver.ParseFiles(cmd.Context(), files, s.driverOptions())
	if err != nil {
		return err
	}

	failedFiles := 0
	for _, r := range results {
		if reportResult(os.Stderr, r, s.cfg.Output.MaxDiagnostics) {
			failedFiles++
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))
	if failedFiles > 0 {
		color.Red("%d of %d files failed after %s", failedFiles, len(results), formattedDuration)
		return errDiagnostics
	}
	color.Green("Successfully checked %s in %s", plural(len(results), "file"), formattedDuration)
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
