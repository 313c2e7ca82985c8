// Package token defines the lexical units produced by the lexer and consumed by the parser.
package token

import "strconv"

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENT // add, foobar, x, y ...
	INT   // 1234567890

	// Operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH

	LT
	GT

	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON

	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// NumTypes is the number of token kinds. Tables indexed by TokenType use it as their length.
	NumTypes
)

var names = [NumTypes]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

func (t TokenType) String() string {
	if t < 0 || t >= NumTypes {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return names[t]
}

// IsKeyword reports whether t is one of the reserved-word kinds.
func (t TokenType) IsKeyword() bool {
	return t >= FUNCTION && t <= RETURN
}

// IsOperator reports whether t is an operator kind, including ASSIGN.
func (t TokenType) IsOperator() bool {
	return t >= ASSIGN && t <= NOT_EQ
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

type Token struct {
	Type     TokenType
	Literal  string
	Position Position
}

var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent returns the keyword kind for ident, or IDENT when it is not reserved.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words in a stable order.
func Keywords() []string {
	return []string{"fn", "let", "true", "false", "if", "else", "return"}
}
