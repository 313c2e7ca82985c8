// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"monkey/internal/config"
	"monkey/internal/parser"
	"monkey/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	cfg, _, err := config.Resolve(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var modes []parser.Mode
	if cfg.Parser.StatementValues {
		modes = append(modes, parser.StatementValues)
	}

	fmt.Printf("Welcome to the Monkey REPL, %s!\n", currentUser.Username)
	if err := repl.Start(os.Stdin, os.Stdout, modes...); err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		os.Exit(1)
	}
}
