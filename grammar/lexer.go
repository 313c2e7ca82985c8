package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var MonkeyLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Keywords (must come before identifiers)
		{"Keyword", `(?:fn|let|true|false|if|else|return)\b`, nil},

		// Identifiers are letters and underscores only
		{"Ident", `[a-zA-Z_]+`, nil},

		// Integer literals
		{"Int", `[0-9]+`, nil},

		// Operators
		{"Operator", `==|!=|[-+*/<>=!]`, nil},

		// Punctuation
		{"Punctuation", `[;,(){}]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
