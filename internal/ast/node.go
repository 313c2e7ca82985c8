// Package ast holds the syntax tree built by the parser. Every node keeps the token that
// introduced it so the literal text and source position stay available for diagnostics.
package ast

import "monkey/internal/token"

type Node interface {
	TokenLiteral() string
	String() string
	NodePos() token.Position
	NodeType() NodeType
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the parse root. It owns every statement below it.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) NodePos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].NodePos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (*Program) NodeType() NodeType { return PROGRAM }

func (ls *LetStatement) TokenLiteral() string    { return ls.Token.Literal }
func (ls *LetStatement) NodePos() token.Position { return ls.Token.Position }
func (*LetStatement) NodeType() NodeType         { return LET_STMT }

func (rs *ReturnStatement) TokenLiteral() string    { return rs.Token.Literal }
func (rs *ReturnStatement) NodePos() token.Position { return rs.Token.Position }
func (*ReturnStatement) NodeType() NodeType         { return RETURN_STMT }

func (es *ExpressionStatement) TokenLiteral() string    { return es.Token.Literal }
func (es *ExpressionStatement) NodePos() token.Position { return es.Token.Position }
func (*ExpressionStatement) NodeType() NodeType         { return EXPR_STMT }

func (i *Identifier) TokenLiteral() string    { return i.Token.Literal }
func (i *Identifier) NodePos() token.Position { return i.Token.Position }
func (*Identifier) NodeType() NodeType        { return IDENT }

func (il *IntegerLiteral) TokenLiteral() string    { return il.Token.Literal }
func (il *IntegerLiteral) NodePos() token.Position { return il.Token.Position }
func (*IntegerLiteral) NodeType() NodeType         { return INTEGER_LITERAL }

func (pe *PrefixExpression) TokenLiteral() string    { return pe.Token.Literal }
func (pe *PrefixExpression) NodePos() token.Position { return pe.Token.Position }
func (*PrefixExpression) NodeType() NodeType         { return PREFIX_EXPR }

func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (*InfixExpression) NodeType() NodeType      { return INFIX_EXPR }

// NodePos of an infix expression is the start of its left operand, not the operator.
func (ie *InfixExpression) NodePos() token.Position {
	if ie.Left != nil {
		return ie.Left.NodePos()
	}
	return ie.Token.Position
}
