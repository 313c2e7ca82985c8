package ast

import "strconv"

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM

	// Statements
	LET_STMT
	RETURN_STMT
	EXPR_STMT

	// Expressions
	IDENT
	INTEGER_LITERAL
	PREFIX_EXPR
	INFIX_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:         "ILLEGAL",
	PROGRAM:         "PROGRAM",
	LET_STMT:        "LET_STMT",
	RETURN_STMT:     "RETURN_STMT",
	EXPR_STMT:       "EXPR_STMT",
	IDENT:           "IDENT",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	PREFIX_EXPR:     "PREFIX_EXPR",
	INFIX_EXPR:      "INFIX_EXPR",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
	return nodeTypeNames[t]
}
