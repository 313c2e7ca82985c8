// Package export converts parsed programs into a plain tree that encodes to JSON, YAML or
// msgpack, and back.
package export

import (
	"fmt"

	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// Node is one AST node. Only the fields meaningful for Type are set.
type Node struct {
	Type     string   `json:"type" yaml:"type" msgpack:"type"`
	Pos      Position `json:"pos" yaml:"pos" msgpack:"pos"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Literal  string   `json:"literal,omitempty" yaml:"literal,omitempty" msgpack:"literal,omitempty"`
	Value    *int64   `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty" msgpack:"operator,omitempty"`
	Left     *Node    `json:"left,omitempty" yaml:"left,omitempty" msgpack:"left,omitempty"`
	Right    *Node    `json:"right,omitempty" yaml:"right,omitempty" msgpack:"right,omitempty"`
	Body     []*Node  `json:"body,omitempty" yaml:"body,omitempty" msgpack:"body,omitempty"`
}

type Position struct {
	Line   int `json:"line" yaml:"line" msgpack:"line"`
	Column int `json:"column" yaml:"column" msgpack:"column"`
	Offset int `json:"offset" yaml:"offset" msgpack:"offset"`
}

// Diagnostic is one parser diagnostic. Category and Description are derived from Code.
type Diagnostic struct {
	Code        string   `json:"code" yaml:"code" msgpack:"code"`
	Category    string   `json:"category" yaml:"category" msgpack:"category"`
	Description string   `json:"description" yaml:"description" msgpack:"description"`
	Message     string   `json:"message" yaml:"message" msgpack:"message"`
	Pos         Position `json:"pos" yaml:"pos" msgpack:"pos"`
	Length      int      `json:"length" yaml:"length" msgpack:"length"`
}

// Document is the unit written by Encode: one file's tree plus its diagnostics.
type Document struct {
	File        string       `json:"file,omitempty" yaml:"file,omitempty" msgpack:"file,omitempty"`
	Program     *Node        `json:"program" yaml:"program" msgpack:"program"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics" msgpack:"diagnostics"`
}

// NewDocument builds a Document from a parse result.
func NewDocument(file string, program *ast.Program, diags []errors.CompilerError) *Document {
	doc := &Document{
		File:        file,
		Program:     FromNode(program),
		Diagnostics: make([]Diagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		doc.Diagnostics = append(doc.Diagnostics, Diagnostic{
			Code:        d.Code,
			Category:    errors.GetErrorCategory(d.Code),
			Description: errors.GetErrorDescription(d.Code),
			Message:     d.Message,
			Pos:         fromPosition(d.Position),
			Length:      d.Length,
		})
	}
	return doc
}

// FromNode converts an AST node and everything below it. A nil node yields nil.
func FromNode(node ast.Node) *Node {
	switch n := node.(type) {
	case *ast.Program:
		out := &Node{Type: n.NodeType().String(), Pos: fromPosition(n.NodePos()), Body: []*Node{}}
		for _, s := range n.Statements {
			out.Body = append(out.Body, FromNode(s))
		}
		return out
	case *ast.LetStatement:
		out := &Node{Type: n.NodeType().String(), Pos: fromPosition(n.NodePos()), Left: FromNode(n.Name)}
		if n.Value != nil {
			out.Right = FromNode(n.Value)
		}
		return out
	case *ast.ReturnStatement:
		out := &Node{Type: n.NodeType().String(), Pos: fromPosition(n.NodePos())}
		if n.ReturnValue != nil {
			out.Right = FromNode(n.ReturnValue)
		}
		return out
	case *ast.ExpressionStatement:
		return &Node{
			Type:    n.NodeType().String(),
			Pos:     fromPosition(n.NodePos()),
			Literal: n.Token.Literal,
			Right:   FromNode(n.Expression),
		}
	case *ast.Identifier:
		if n == nil {
			return nil
		}
		return &Node{Type: n.NodeType().String(), Pos: fromPosition(n.NodePos()), Name: n.Value}
	case *ast.IntegerLiteral:
		value := n.Value
		return &Node{Type: n.NodeType().String(), Pos: fromPosition(n.NodePos()), Literal: n.Token.Literal, Value: &value}
	case *ast.PrefixExpression:
		return &Node{
			Type:     n.NodeType().String(),
			Pos:      fromPosition(n.Token.Position),
			Operator: n.Operator,
			Right:    FromNode(n.Right),
		}
	case *ast.InfixExpression:
		return &Node{
			Type:     n.NodeType().String(),
			Pos:      fromPosition(n.Token.Position),
			Operator: n.Operator,
			Left:     FromNode(n.Left),
			Right:    FromNode(n.Right),
		}
	}
	return nil
}

// ToProgram rebuilds an AST from a PROGRAM node.
func ToProgram(n *Node) (*ast.Program, error) {
	if n == nil || n.Type != ast.PROGRAM.String() {
		return nil, fmt.Errorf("export: root must be a %s node", ast.PROGRAM)
	}
	program := &ast.Program{Statements: []ast.Statement{}}
	for i, child := range n.Body {
		stmt, err := toStatement(child)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func toStatement(n *Node) (ast.Statement, error) {
	if n == nil {
		return nil, fmt.Errorf("export: missing statement")
	}
	switch n.Type {
	case ast.LET_STMT.String():
		name, err := toExpression(n.Left)
		if err != nil {
			return nil, err
		}
		ident, ok := name.(*ast.Identifier)
		if !ok {
			return nil, fmt.Errorf("export: let name must be %s, got %s", ast.IDENT, n.Left.Type)
		}
		stmt := &ast.LetStatement{Token: newToken(token.LET, "let", n.Pos), Name: ident}
		if n.Right != nil {
			if stmt.Value, err = toExpression(n.Right); err != nil {
				return nil, err
			}
		}
		return stmt, nil
	case ast.RETURN_STMT.String():
		stmt := &ast.ReturnStatement{Token: newToken(token.RETURN, "return", n.Pos)}
		if n.Right != nil {
			value, err := toExpression(n.Right)
			if err != nil {
				return nil, err
			}
			stmt.ReturnValue = value
		}
		return stmt, nil
	case ast.EXPR_STMT.String():
		exp, err := toExpression(n.Right)
		if err != nil {
			return nil, err
		}
		tok := lexer.New(n.Literal).NextToken()
		tok.Position = toPosition(n.Pos)
		return &ast.ExpressionStatement{Token: tok, Expression: exp}, nil
	}
	return nil, fmt.Errorf("export: %q is not a statement", n.Type)
}

func toExpression(n *Node) (ast.Expression, error) {
	if n == nil {
		return nil, fmt.Errorf("export: missing expression")
	}
	switch n.Type {
	case ast.IDENT.String():
		return &ast.Identifier{Token: newToken(token.IDENT, n.Name, n.Pos), Value: n.Name}, nil
	case ast.INTEGER_LITERAL.String():
		if n.Value == nil {
			return nil, fmt.Errorf("export: integer %q has no value", n.Literal)
		}
		return &ast.IntegerLiteral{Token: newToken(token.INT, n.Literal, n.Pos), Value: *n.Value}, nil
	case ast.PREFIX_EXPR.String():
		tt, err := operatorType(n.Operator)
		if err != nil {
			return nil, err
		}
		right, err := toExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Token: newToken(tt, n.Operator, n.Pos), Operator: n.Operator, Right: right}, nil
	case ast.INFIX_EXPR.String():
		tt, err := operatorType(n.Operator)
		if err != nil {
			return nil, err
		}
		left, err := toExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := toExpression(n.Right)
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpression{Token: newToken(tt, n.Operator, n.Pos), Left: left, Operator: n.Operator, Right: right}, nil
	}
	return nil, fmt.Errorf("export: %q is not an expression", n.Type)
}

// operatorType classifies an operator literal with the lexer so both agree on spelling.
func operatorType(op string) (token.TokenType, error) {
	tok := lexer.New(op).NextToken()
	if !tok.Type.IsOperator() || tok.Literal != op {
		return token.ILLEGAL, fmt.Errorf("export: unknown operator %q", op)
	}
	return tok.Type, nil
}

func newToken(tt token.TokenType, literal string, pos Position) token.Token {
	return token.Token{Type: tt, Literal: literal, Position: toPosition(pos)}
}

func fromPosition(p token.Position) Position {
	return Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func toPosition(p Position) token.Position {
	return token.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
