package ast

import "monkey/internal/token"

// LetStatement binds Name to Value. Value is nil when the parser skipped the
// right-hand side.
type LetStatement struct {
	Token token.Token // the token.LET token
	Name  *Identifier
	Value Expression
}

type ReturnStatement struct {
	Token       token.Token // the token.RETURN token
	ReturnValue Expression
}

// ExpressionStatement is a bare expression used as a statement, e.g. `x + 10;`.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (*LetStatement) statementNode()        {}
func (*ReturnStatement) statementNode()     {}
func (*ExpressionStatement) statementNode() {}
