// Package repl reads one line at a time, parses it and prints the tree or the diagnostics.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"monkey/internal/errors"
	"monkey/internal/lexer"
	"monkey/internal/parser"
)

const PROMPT = ">> "

// Start runs the loop until in is exhausted or the user types :quit. Every line is parsed
// independently. :tokens toggles printing the token stream before the tree.
func Start(in io.Reader, out io.Writer, modes ...parser.Mode) error {
	scanner := bufio.NewScanner(in)
	showTokens := false

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return nil
		case ":tokens":
			showTokens = !showTokens
			fmt.Fprintf(out, "token output %s\n", onOff(showTokens))
			continue
		}

		if showTokens {
			for _, tok := range lexer.Tokenize(line) {
				fmt.Fprintf(out, "%-9s %q\n", tok.Type, tok.Literal)
			}
		}

		p := parser.New(lexer.New(line), modes...)
		program := p.ParseProgram()

		if diags := p.Diagnostics(); len(diags) > 0 {
			reporter := errors.NewErrorReporter("<repl>", line)
			fmt.Fprint(out, reporter.FormatAll(diags, 0))
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", program.String())
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
