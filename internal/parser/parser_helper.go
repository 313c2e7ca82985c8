package parser

import (
	"monkey/internal/errors"
	"monkey/internal/token"
)

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only when the next token has type t. Otherwise it records a
// peek error and leaves the cursor where it was.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekPrecedence() Precedence {
	return precedenceOf(p.peekToken.Type)
}

func (p *Parser) curPrecedence() Precedence {
	return precedenceOf(p.curToken.Type)
}

func (p *Parser) peekError(t token.TokenType) {
	p.errors = append(p.errors, errors.UnexpectedToken(t, p.peekToken))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errors = append(p.errors, errors.NoPrefixParse(tok))
}

// Errors returns the diagnostic messages collected so far, in the order they were found.
func (p *Parser) Errors() []string {
	messages := make([]string, 0, len(p.errors))
	for _, err := range p.errors {
		messages = append(messages, err.Message)
	}
	return messages
}

// Diagnostics returns the collected diagnostics with their codes and positions.
func (p *Parser) Diagnostics() []errors.CompilerError {
	return p.errors
}
