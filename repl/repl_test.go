package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/parser"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, input string, modes ...parser.Mode) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Start(strings.NewReader(input), &out, modes...))
	return out.String()
}

func TestStartPrintsTree(t *testing.T) {
	out := run(t, "-a * b\n")
	assert.Equal(t, ">> AST:\n((-a) * b)\n>> \n", out)
}

func TestStartStopsAtEOF(t *testing.T) {
	assert.Equal(t, ">> \n", run(t, ""))
}

func TestStartSkipsBlankLines(t *testing.T) {
	out := run(t, "\n   \n1\n")
	assert.Equal(t, ">> >> >> AST:\n1\n>> \n", out)
}

func TestStartQuit(t *testing.T) {
	out := run(t, ":quit\n1 + 2\n")
	assert.Equal(t, ">> ", out)
}

func TestStartReportsDiagnostics(t *testing.T) {
	out := run(t, "let = 5;\n")
	assert.Contains(t, out, "error[E0100]: expected next token to be IDENT, got ASSIGN instead")
	assert.Contains(t, out, "<repl>:1:5")
	assert.NotContains(t, out, "AST:")
}

func TestStartModes(t *testing.T) {
	assert.Contains(t, run(t, "let x = 1 + 2;\n"), "let x = ;")
	assert.Contains(t, run(t, "let x = 1 + 2;\n", parser.StatementValues), "let x = (1 + 2);")
}

func TestStartTokens(t *testing.T) {
	out := run(t, ":tokens\nx\n")
	assert.Contains(t, out, "token output on\n")
	assert.Contains(t, out, "IDENT     \"x\"\n")
	assert.Contains(t, out, "EOF       \"\"\n")
}
