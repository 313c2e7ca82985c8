package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/lexer"
)

func parse(t *testing.T, input string, modes ...Mode) (*ast.Program, *Parser) {
	t.Helper()

	p := New(lexer.New(input), modes...)
	program := p.ParseProgram()
	require.NotNil(t, program, "ParseProgram() returned nil")

	return program, p
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()

	errs := p.Errors()
	if len(errs) == 0 {
		return
	}

	for _, msg := range errs {
		t.Errorf("parser error: %q", msg)
	}
	t.FailNow()
}

func codes(diags []errors.CompilerError) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func TestLetStatements(t *testing.T) {
	input := `
let x = 5;
let y = 10;
let foobar = 838383;
`
	program, p := parse(t, input)
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 3)

	for i, name := range []string{"x", "y", "foobar"} {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		require.True(t, ok, "statement %d is %T, want *ast.LetStatement", i, program.Statements[i])

		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, name, stmt.Name.Value)
		assert.Equal(t, name, stmt.Name.TokenLiteral())
		assert.Nil(t, stmt.Value, "value is skipped unless StatementValues is set")
	}
}

func TestReturnStatements(t *testing.T) {
	input := `
return 5;
return 10;
return 993322;
`
	program, p := parse(t, input)
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 3)
	for _, stmt := range program.Statements {
		returnStmt, ok := stmt.(*ast.ReturnStatement)
		require.True(t, ok, "statement is %T, want *ast.ReturnStatement", stmt)
		assert.Equal(t, "return", returnStmt.TokenLiteral())
	}
}

func TestStatementsKeepSourceOrder(t *testing.T) {
	program, p := parse(t, "let a = 1; return a; let b = 2; a + b;")
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 4)
	assert.IsType(t, &ast.LetStatement{}, program.Statements[0])
	assert.IsType(t, &ast.ReturnStatement{}, program.Statements[1])
	assert.IsType(t, &ast.LetStatement{}, program.Statements[2])
	assert.IsType(t, &ast.ExpressionStatement{}, program.Statements[3])
	assert.Equal(t, "b", program.Statements[2].(*ast.LetStatement).Name.Value)
}

func TestStatementValuesMode(t *testing.T) {
	input := `
let x = 5 * y;
let flag = !x
return -x;
return;
`
	program, p := parse(t, input, StatementValues)
	checkParserErrors(t, p)

	require.Len(t, program.Statements, 4)

	let := program.Statements[0].(*ast.LetStatement)
	require.NotNil(t, let.Value)
	assert.Equal(t, "(5 * y)", let.Value.String())

	flag := program.Statements[1].(*ast.LetStatement)
	assert.Equal(t, "flag", flag.Name.Value)
	assert.Equal(t, "(!x)", flag.Value.String())

	ret := program.Statements[2].(*ast.ReturnStatement)
	assert.Equal(t, "(-x)", ret.ReturnValue.String())

	empty := program.Statements[3].(*ast.ReturnStatement)
	assert.Nil(t, empty.ReturnValue)

	assert.Equal(t, "let x = (5 * y);let flag = (!x);return (-x);return ;", program.String())
}

func TestStatementValuesModeInvalidValue(t *testing.T) {
	program, p := parse(t, "let x = ;", StatementValues)

	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{"no prefix parse function for SEMICOLON found"}, p.Errors())
}

func TestMalformedLetStatement(t *testing.T) {
	input := `
let = 5;
let y = 10;
`
	program, p := parse(t, input)

	var lets []*ast.LetStatement
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*ast.LetStatement); ok {
			lets = append(lets, let)
		}
	}
	require.Len(t, lets, 1, "only the well-formed let statement is kept")
	assert.Equal(t, "y", lets[0].Name.Value)

	diags := p.Diagnostics()
	var mismatches []errors.CompilerError
	for _, d := range diags {
		if d.Code == errors.ErrorUnexpectedToken {
			mismatches = append(mismatches, d)
		}
	}
	require.Len(t, mismatches, 1)
	assert.Equal(t, "expected next token to be IDENT, got ASSIGN instead", mismatches[0].Message)
	assert.Equal(t, 2, mismatches[0].Position.Line)
	assert.Equal(t, 5, mismatches[0].Position.Column)

	// The parser does not resynchronise after an abandoned let statement, so the '='
	// it stopped on is parsed as the start of an expression statement.
	assert.Equal(t, []string{errors.ErrorUnexpectedToken, errors.ErrorNoPrefixParse}, codes(diags))
}

func TestLetStatementErrors(t *testing.T) {
	input := `
let x 5;
let = 10;
let 838383;
`
	_, p := parse(t, input)

	assert.Equal(t, []string{
		"expected next token to be ASSIGN, got INT instead",
		"expected next token to be IDENT, got ASSIGN instead",
		"no prefix parse function for ASSIGN found",
		"expected next token to be IDENT, got INT instead",
	}, p.Errors())
}

func TestBareSemicolon(t *testing.T) {
	program, p := parse(t, ";")

	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{"no prefix parse function for SEMICOLON found"}, p.Errors())
	assert.Equal(t, []string{errors.ErrorNoPrefixParse}, codes(p.Diagnostics()))
}

func TestIllegalCharacter(t *testing.T) {
	program, p := parse(t, "@")

	assert.Empty(t, program.Statements)
	require.Len(t, p.Diagnostics(), 1)
	assert.Equal(t, errors.ErrorIllegalCharacter, p.Diagnostics()[0].Code)
	assert.Equal(t, "no prefix parse function for ILLEGAL found", p.Errors()[0])
}

func TestNULByteDoesNotEndInput(t *testing.T) {
	program, p := parse(t, "let a = 1;\x00let b = 2;")

	require.Len(t, program.Statements, 2)
	assert.Equal(t, "b", program.Statements[1].(*ast.LetStatement).Name.Value)
	require.Len(t, p.Diagnostics(), 1)
	assert.Equal(t, errors.ErrorIllegalCharacter, p.Diagnostics()[0].Code)
	assert.Equal(t, 11, p.Diagnostics()[0].Position.Column)
}

func TestIntegerOverflow(t *testing.T) {
	program, p := parse(t, "99999999999999999999")

	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{`could not parse "99999999999999999999" as integer`}, p.Errors())
}

func TestMissingRightOperand(t *testing.T) {
	program, p := parse(t, "5 +")

	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{"no prefix parse function for EOF found"}, p.Errors())
}

func TestUnterminatedStatementsReachEOF(t *testing.T) {
	program, p := parse(t, "let x = 5")
	checkParserErrors(t, p)
	require.Len(t, program.Statements, 1)

	program, p = parse(t, "return 5")
	checkParserErrors(t, p)
	require.Len(t, program.Statements, 1)

	program, p = parse(t, "return")
	checkParserErrors(t, p)
	require.Len(t, program.Statements, 1)
}

func TestRecoveryAfterErrors(t *testing.T) {
	program, p := parse(t, "; let a = 1; @ let b = 2;")

	require.Len(t, p.Errors(), 2)

	var names []string
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*ast.LetStatement); ok {
			names = append(names, let.Name.Value)
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestEmptyProgram(t *testing.T) {
	program, p := parse(t, "")
	checkParserErrors(t, p)
	assert.Empty(t, program.Statements)
	assert.Empty(t, p.Errors())
}

func TestParseSource(t *testing.T) {
	program, diags := ParseSource("let x = 1 + 2;", StatementValues)
	assert.Empty(t, diags)
	assert.Equal(t, "let x = (1 + 2);", program.String())

	program, diags = ParseSource("let = 1;")
	require.NotNil(t, program)
	assert.NotEmpty(t, diags)
}
