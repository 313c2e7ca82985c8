// Package parser builds an AST from the lexer's token stream. Statements are parsed by
// recursive descent and expressions by a Pratt (operator precedence) loop driven by
// per-token prefix and infix parse functions.
package parser

import (
	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// Mode controls optional parser behaviour.
type Mode uint

const (
	// StatementValues parses the right-hand side of let and return statements as
	// expressions. Without it the parser skips those tokens up to the terminating
	// semicolon and leaves the value nil.
	StatementValues Mode = 1 << iota
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l      *lexer.Lexer
	mode   Mode
	errors []errors.CompilerError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns [token.NumTypes]prefixParseFn
	infixParseFns  [token.NumTypes]infixParseFn
}

func New(l *lexer.Lexer, modes ...Mode) *Parser {
	p := &Parser{l: l}
	for _, m := range modes {
		p.mode |= m
	}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	for _, tt := range []token.TokenType{
		token.EQ, token.NOT_EQ,
		token.LT, token.GT,
		token.PLUS, token.MINUS,
		token.ASTERISK, token.SLASH,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// ParseProgram parses statements until EOF. It always returns a program; statements
// that could not be parsed are left out and described by Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case token.RETURN:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	// A typed nil must not leak into the ast.Statement interface.
	return nil
}

// parseLetStatement parses `let <ident> = <value>;`. A missing identifier or '=' records
// a diagnostic and abandons the statement without resynchronising, so the next
// iteration of ParseProgram resumes at the offending token.
func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	if p.mode&StatementValues == 0 {
		p.skipToSemicolon()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.mode&StatementValues == 0 {
		p.nextToken()
		p.skipToSemicolon()
		return stmt
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	// The semicolon is optional so that `5 + 5` works in the REPL.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// skipToSemicolon advances until curToken is ';' or EOF. Statement values are not
// parsed in the default mode; see StatementValues.
func (p *Parser) skipToSemicolon() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
