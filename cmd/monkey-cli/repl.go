package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"monkey/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parser session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Monkey REPL. :tokens toggles token output, :quit exits.")
		return repl.Start(os.Stdin, os.Stdout, s.modes()...)
	},
}

func init() {
	replCmd.Flags().Bool("values", false, "parse let and return values as expressions")
}
