package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program mirrors the hand-written parser's StatementValues mode for the
// let/return/expression subset. Precedence is encoded by nesting one struct per level.
type Program struct {
	Pos        lexer.Position
	Statements []*Statement `@@*`
}

type Statement struct {
	Let    *LetStmt    `  @@`
	Return *ReturnStmt `| @@`
	Expr   *ExprStmt   `| @@`
}

type LetStmt struct {
	Pos   lexer.Position
	Name  string `"let" @Ident "="`
	Value *Expr  `@@ [ ";" ]`
}

type ReturnStmt struct {
	Pos   lexer.Position
	Value *Expr `"return" ( ";" | @@ [ ";" ] )`
}

type ExprStmt struct {
	Pos  lexer.Position
	Expr *Expr `@@ [ ";" ]`
}

type Expr struct {
	Equality *Equality `@@`
}

type Equality struct {
	Left *Comparison   `@@`
	Ops  []*EqualityOp `{ @@ }`
}

type EqualityOp struct {
	Operator string      `@("==" | "!=")`
	Right    *Comparison `@@`
}

type Comparison struct {
	Left *Sum            `@@`
	Ops  []*ComparisonOp `{ @@ }`
}

type ComparisonOp struct {
	Operator string `@("<" | ">")`
	Right    *Sum   `@@`
}

type Sum struct {
	Left *Product `@@`
	Ops  []*SumOp `{ @@ }`
}

type SumOp struct {
	Operator string   `@("+" | "-")`
	Right    *Product `@@`
}

type Product struct {
	Left *Unary       `@@`
	Ops  []*ProductOp `{ @@ }`
}

type ProductOp struct {
	Operator string `@("*" | "/")`
	Right    *Unary `@@`
}

type Unary struct {
	Operator string   `  ( @("!" | "-")`
	Operand  *Unary   `    @@ )`
	Primary  *Primary `| @@`
}

type Primary struct {
	Pos   lexer.Position
	Int   *string `  @Int`
	Ident *string `| @Ident`
	Group *Expr   `| "(" @@ ")"`
}
