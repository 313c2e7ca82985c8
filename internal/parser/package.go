package parser

import (
	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/lexer"
)

// ParseSource lexes and parses source in one call. The returned program is never nil.
func ParseSource(source string, modes ...Mode) (*ast.Program, []errors.CompilerError) {
	p := New(lexer.New(source), modes...)
	program := p.ParseProgram()

	return program, p.Diagnostics()
}
