package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"fn", FUNCTION},
		{"let", LET},
		{"true", TRUE},
		{"false", FALSE},
		{"if", IF},
		{"else", ELSE},
		{"return", RETURN},
		{"foobar", IDENT},
		{"Let", IDENT},
		{"_", IDENT},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LookupIdent(tt.input), "LookupIdent(%q)", tt.input)
	}
}

func TestKeywordsAreReserved(t *testing.T) {
	for _, kw := range Keywords() {
		typ := LookupIdent(kw)
		assert.True(t, typ.IsKeyword(), "%q should map to a keyword kind, got %s", kw, typ)
	}
}

func TestTokenTypeStrings(t *testing.T) {
	for typ := ILLEGAL; typ < NumTypes; typ++ {
		assert.NotEmpty(t, typ.String(), "TokenType %d should have a name", int(typ))
	}

	assert.Equal(t, "ASSIGN", ASSIGN.String())
	assert.Equal(t, "NOT_EQ", NOT_EQ.String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}

func TestEqualityOperatorsAreDistinct(t *testing.T) {
	assert.NotEqual(t, EQ, NOT_EQ)
	assert.NotEqual(t, EQ.String(), NOT_EQ.String())
	assert.True(t, EQ.IsOperator())
	assert.True(t, NOT_EQ.IsOperator())
	assert.False(t, SEMICOLON.IsOperator())
}
