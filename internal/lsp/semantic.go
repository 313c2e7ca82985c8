package lsp

import (
	"strings"

	"monkey/internal/ast"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions; StartChar and Length count UTF-16 units
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the document's tokens in source order. Names bound by
// a let statement carry the declaration modifier.
func collectSemanticTokens(text string, program *ast.Program) []SemanticToken {
	declared := make(map[int]bool)
	if program != nil {
		for _, name := range letDeclarations(program) {
			declared[name.Token.Position.Offset] = true
		}
	}

	lines := strings.Split(text, "\n")

	var tokens []SemanticToken
	for _, tok := range lexer.Tokenize(text) {
		var tokenType string
		modifier := 0

		switch {
		case tok.Type.IsKeyword():
			tokenType = "keyword"
		case tok.Type == token.IDENT:
			tokenType = "variable"
			if declared[tok.Position.Offset] {
				modifier = 1
			}
		case tok.Type == token.INT:
			tokenType = "number"
		case tok.Type.IsOperator():
			tokenType = "operator"
		default:
			continue
		}

		tokens = append(tokens, makeToken(lines[tok.Position.Line-1], tok, tokenType, modifier)...)
	}

	return tokens
}

// makeToken converts tok's byte column on line to the UTF-16 units the protocol expects.
func makeToken(line string, tok token.Token, tokenType string, declModifier int) []SemanticToken {
	if tok.Literal == "" {
		return nil
	}

	col := tok.Position.Column - 1
	start := utf16Column(line, col)
	return []SemanticToken{{
		Line:           uint32(tok.Position.Line - 1), // LSP uses 0-based line numbers
		StartChar:      start,
		Length:         utf16Column(line, col+len(tok.Literal)) - start,
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
