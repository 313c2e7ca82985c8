package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"monkey/internal/token"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(MonkeyLexer),
	participle.Map(keywords, "Ident"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

var keywordType = MonkeyLexer.Symbols()["Keyword"]

// keywords retypes an Ident spelled like a keyword. The Keyword rule's \b misses a
// keyword directly followed by a digit ("return1"), which the hand lexer splits off.
func keywords(tok lexer.Token) (lexer.Token, error) {
	if token.LookupIdent(tok.Value) != token.IDENT {
		tok.Type = keywordType
	}
	return tok, nil
}

// ParseString parses source with the reference grammar. filename only labels positions
// in the returned error.
func ParseString(filename, source string) (*Program, error) {
	program, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("reference grammar: %w", err)
	}
	return program, nil
}

// ErrorPosition extracts the source position from a ParseString error. ok is false when
// the error carries no position.
func ErrorPosition(err error) (line, column int, message string, ok bool) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return 0, 0, "", false
	}
	pos := pe.Position()
	return pos.Line, pos.Column, pe.Message(), true
}
