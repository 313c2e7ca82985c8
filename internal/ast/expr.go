package ast

import "monkey/internal/token"

type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

type PrefixExpression struct {
	Token    token.Token // the prefix operator, e.g. ! or -
	Operator string
	Right    Expression
}

type InfixExpression struct {
	Token    token.Token // the operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (*Identifier) expressionNode()       {}
func (*IntegerLiteral) expressionNode()   {}
func (*PrefixExpression) expressionNode() {}
func (*InfixExpression) expressionNode()  {}
