package driver

import (
	"monkey/grammar"
	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/token"
)

// CrossCheck parses source with the reference grammar and compares its rendering with
// program statement by statement. program must come from a StatementValues parse with no
// diagnostics. At most one diagnostic is returned: the first disagreement.
func CrossCheck(path, source string, program *ast.Program) []errors.CompilerError {
	ref, err := grammar.ParseString(path, source)
	if err != nil {
		pos := token.Position{Line: 1, Column: 1}
		reason := err.Error()
		if line, column, message, ok := grammar.ErrorPosition(err); ok {
			pos = token.Position{Line: line, Column: column}
			reason = message
		}
		return []errors.CompilerError{errors.CrossCheckRejected(pos, reason)}
	}

	for i, stmt := range program.Statements {
		if i >= len(ref.Statements) {
			return []errors.CompilerError{errors.CrossCheckMismatch(stmt.NodePos(), stmt.String(), "")}
		}
		if want := ref.Statements[i].String(); stmt.String() != want {
			return []errors.CompilerError{errors.CrossCheckMismatch(stmt.NodePos(), stmt.String(), want)}
		}
	}
	if len(ref.Statements) > len(program.Statements) {
		return []errors.CompilerError{errors.CrossCheckMismatch(program.NodePos(), "", ref.Statements[len(program.Statements)].String())}
	}
	return nil
}
