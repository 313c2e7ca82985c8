// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"
)

var (
	version = "0.1.0"
	log     = commonlog.GetLogger("monkey.cli")
)

// errDiagnostics makes the process exit with status 1 after diagnostics were printed.
var errDiagnostics = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:           "monkey-cli",
	Short:         "Monkey front end: tokenizer and parser tools",
	Long:          `monkey-cli tokenizes and parses Monkey source files and reports diagnostics`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetCount("verbose")
		if err != nil {
			return err
		}
		commonlog.Configure(verbose, nil)
		return nil
	},
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("config", "", "path to monkey.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show per file (0 = all)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "log verbosity (repeat for more)")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
