package ast

import "strings"

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

func (ls *LetStatement) String() string {
	var b strings.Builder

	b.WriteString(ls.TokenLiteral() + " ")
	if ls.Name != nil {
		b.WriteString(ls.Name.String())
	}
	b.WriteString(" = ")
	if ls.Value != nil {
		b.WriteString(ls.Value.String())
	}
	b.WriteString(";")

	return b.String()
}

func (rs *ReturnStatement) String() string {
	var b strings.Builder

	b.WriteString(rs.TokenLiteral() + " ")
	if rs.ReturnValue != nil {
		b.WriteString(rs.ReturnValue.String())
	}
	b.WriteString(";")

	return b.String()
}

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

func (i *Identifier) String() string {
	return i.Value
}

func (il *IntegerLiteral) String() string {
	return il.Token.Literal
}

// Prefix and infix expressions render fully parenthesised so precedence is visible.
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + operandString(pe.Right) + ")"
}

func (ie *InfixExpression) String() string {
	return "(" + operandString(ie.Left) + " " + ie.Operator + " " + operandString(ie.Right) + ")"
}

func operandString(e Expression) string {
	if e == nil {
		return ""
	}
	return e.String()
}
