package grammar

import "strings"

// String renders the program the way ast.Program does, with every operator application
// wrapped in parentheses.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

func (s *Statement) String() string {
	switch {
	case s.Let != nil:
		return s.Let.String()
	case s.Return != nil:
		return s.Return.String()
	case s.Expr != nil:
		return s.Expr.Expr.String()
	}
	return ""
}

func (l *LetStmt) String() string {
	return "let " + l.Name + " = " + l.Value.String() + ";"
}

func (r *ReturnStmt) String() string {
	if r.Value == nil {
		return "return ;"
	}
	return "return " + r.Value.String() + ";"
}

func (e *Expr) String() string {
	return e.Equality.String()
}

func (e *Equality) String() string {
	s := e.Left.String()
	for _, op := range e.Ops {
		s = infix(s, op.Operator, op.Right.String())
	}
	return s
}

func (c *Comparison) String() string {
	s := c.Left.String()
	for _, op := range c.Ops {
		s = infix(s, op.Operator, op.Right.String())
	}
	return s
}

func (s *Sum) String() string {
	out := s.Left.String()
	for _, op := range s.Ops {
		out = infix(out, op.Operator, op.Right.String())
	}
	return out
}

func (p *Product) String() string {
	s := p.Left.String()
	for _, op := range p.Ops {
		s = infix(s, op.Operator, op.Right.String())
	}
	return s
}

func (u *Unary) String() string {
	if u.Operand != nil {
		return "(" + u.Operator + u.Operand.String() + ")"
	}
	return u.Primary.String()
}

func (p *Primary) String() string {
	switch {
	case p.Int != nil:
		return *p.Int
	case p.Ident != nil:
		return *p.Ident
	case p.Group != nil:
		// Parentheses only group; the operators inside render their own.
		return p.Group.String()
	}
	return ""
}

func infix(left, operator, right string) string {
	return "(" + left + " " + operator + " " + right + ")"
}
