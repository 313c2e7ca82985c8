package errors

import (
	"fmt"

	"monkey/internal/token"
)

// ErrorBuilder provides a fluent interface for creating compiler errors
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos token.Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// UnexpectedToken creates an error for an expectation mismatch
func UnexpectedToken(expected token.TokenType, actual token.Token) CompilerError {
	builder := NewError(ErrorUnexpectedToken,
		fmt.Sprintf("expected next token to be %s, got %s instead", expected, actual.Type),
		actual.Position).
		WithLength(max(1, len(actual.Literal)))

	switch expected {
	case token.IDENT:
		builder.WithSuggestion("a let statement needs a name: let <name> = <value>;")
	case token.ASSIGN:
		builder.WithSuggestion("add '=' between the name and the value")
	}

	return builder.Build()
}

// NoPrefixParse creates an error for a token that cannot begin an expression
func NoPrefixParse(tok token.Token) CompilerError {
	if tok.Type == token.ILLEGAL {
		return IllegalCharacter(tok)
	}

	return NewError(ErrorNoPrefixParse,
		fmt.Sprintf("no prefix parse function for %s found", tok.Type),
		tok.Position).
		WithLength(max(1, len(tok.Literal))).
		WithHelp("an expression starts with an identifier, an integer, '!' or '-'").
		Build()
}

// IllegalCharacter creates an error for a character the lexer did not recognise
func IllegalCharacter(tok token.Token) CompilerError {
	return NewError(ErrorIllegalCharacter,
		fmt.Sprintf("no prefix parse function for %s found", tok.Type),
		tok.Position).
		WithLength(max(1, len(tok.Literal))).
		WithNote(fmt.Sprintf("illegal character %q", tok.Literal)).
		Build()
}

// InvalidInteger creates an error for an integer literal that does not fit in an int64
func InvalidInteger(tok token.Token) CompilerError {
	return NewError(ErrorInvalidInteger,
		fmt.Sprintf("could not parse %q as integer", tok.Literal),
		tok.Position).
		WithLength(len(tok.Literal)).
		WithNote("integer literals are 64-bit signed values").
		Build()
}

// CrossCheckMismatch reports a statement the reference grammar renders differently.
func CrossCheckMismatch(pos token.Position, parsed, reference string) CompilerError {
	return NewError(ErrorCrossCheck, "reference grammar disagrees with parser", pos).
		WithNote("parser:    " + parsed).
		WithNote("reference: " + reference).
		Build()
}

// CrossCheckRejected reports source the parser accepted but the reference grammar did not.
func CrossCheckRejected(pos token.Position, reason string) CompilerError {
	return NewError(ErrorCrossCheck, "reference grammar rejected the program", pos).
		WithNote(reason).
		Build()
}
