// Package lexer turns source text into a stream of tokens, one NextToken call at a time.
package lexer

import (
	"unicode/utf8"

	"monkey/internal/token"
)

type Lexer struct {
	input        string
	position     int  // index of ch
	readPosition int  // index of the character after ch
	ch           byte // 0 once the input is exhausted, or a NUL byte in the input

	line   int
	column int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// readChar moves ch to the next character. Once the input is exhausted ch stays 0 and
// further calls are no-ops.
func (l *Lexer) readChar() {
	if l.readPosition > 0 && l.position >= len(l.input) {
		return
	}

	switch {
	case l.readPosition == 0:
		l.column = 1
	case l.ch == '\n':
		l.line++
		l.column = 1
	default:
		l.column++
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token. After the input is exhausted it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := l.currentPosition()
	if l.position >= len(l.input) {
		return token.Token{Type: token.EOF, Literal: "", Position: pos}
	}

	var tok token.Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "==", Position: pos}
		} else {
			tok = newToken(token.ASSIGN, l.ch, pos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!=", Position: pos}
		} else {
			tok = newToken(token.BANG, l.ch, pos)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, pos)
	case '-':
		tok = newToken(token.MINUS, l.ch, pos)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, pos)
	case '/':
		tok = newToken(token.SLASH, l.ch, pos)
	case '<':
		tok = newToken(token.LT, l.ch, pos)
	case '>':
		tok = newToken(token.GT, l.ch, pos)
	case ',':
		tok = newToken(token.COMMA, l.ch, pos)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, pos)
	case '(':
		tok = newToken(token.LPAREN, l.ch, pos)
	case ')':
		tok = newToken(token.RPAREN, l.ch, pos)
	case '{':
		tok = newToken(token.LBRACE, l.ch, pos)
	case '}':
		tok = newToken(token.RBRACE, l.ch, pos)
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(literal), Literal: literal, Position: pos}
		case isDigit(l.ch):
			return token.Token{Type: token.INT, Literal: l.readNumber(), Position: pos}
		case l.ch >= utf8.RuneSelf:
			return token.Token{Type: token.ILLEGAL, Literal: l.readRune(), Position: pos}
		default:
			tok = newToken(token.ILLEGAL, l.ch, pos)
		}
	}

	l.readChar()
	return tok
}

// Tokenize scans the whole input and returns every token, the trailing EOF included.
func Tokenize(input string) []token.Token {
	l := New(input)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) currentPosition() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readRune consumes a whole UTF-8 sequence so a non-ASCII character yields one ILLEGAL token.
func (l *Lexer) readRune() string {
	start := l.position
	_, size := utf8.DecodeRuneInString(l.input[start:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return l.input[start:l.position]
}

func newToken(tokenType token.TokenType, ch byte, pos token.Position) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Position: pos}
}

// Identifiers are letters and underscores only; digits are not accepted inside them.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
