package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/ast"
	"monkey/internal/parser"
)

const source = `let x = 5 * y;
return -x;
a + b * (c - 1) != 10;
@`

func TestFromNode(t *testing.T) {
	program, _ := parser.ParseSource("-a * b;", parser.StatementValues)
	root := FromNode(program)

	require.Equal(t, "PROGRAM", root.Type)
	require.Len(t, root.Body, 1)

	stmt := root.Body[0]
	assert.Equal(t, "EXPR_STMT", stmt.Type)
	assert.Equal(t, "-", stmt.Literal)

	infix := stmt.Right
	assert.Equal(t, "INFIX_EXPR", infix.Type)
	assert.Equal(t, "*", infix.Operator)
	assert.Equal(t, Position{Line: 1, Column: 4, Offset: 3}, infix.Pos)

	prefix := infix.Left
	assert.Equal(t, "PREFIX_EXPR", prefix.Type)
	assert.Equal(t, "a", prefix.Right.Name)
	assert.Equal(t, "b", infix.Right.Name)
}

func TestEmptyProgram(t *testing.T) {
	program, _ := parser.ParseSource("")
	root := FromNode(program)
	assert.Equal(t, "PROGRAM", root.Type)
	assert.NotNil(t, root.Body)
	assert.Empty(t, root.Body)
}

func TestSkippedValuesAreOmitted(t *testing.T) {
	program, _ := parser.ParseSource("let x = 5; return 1;")
	root := FromNode(program)
	require.Len(t, root.Body, 2)
	assert.Equal(t, "x", root.Body[0].Left.Name)
	assert.Nil(t, root.Body[0].Right)
	assert.Nil(t, root.Body[1].Right)
}

func TestFormatsDecodeToSameTree(t *testing.T) {
	program, diags := parser.ParseSource(source, parser.StatementValues)
	require.Len(t, diags, 1)
	doc := NewDocument("main.mk", program, diags)

	for _, f := range []Format{JSON, YAML, Msgpack} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, f, doc))

			decoded, err := Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, doc, decoded)

			rebuilt, err := ToProgram(decoded.Program)
			require.NoError(t, err)
			assert.Equal(t, program.String(), rebuilt.String())
			assert.Equal(t, nodeTypes(program), nodeTypes(rebuilt))
		})
	}
}

func TestNewDocumentDescribesDiagnostics(t *testing.T) {
	program, diags := parser.ParseSource(source, parser.StatementValues)
	doc := NewDocument("main.mk", program, diags)

	require.Len(t, doc.Diagnostics, 1)
	d := doc.Diagnostics[0]
	assert.Equal(t, "E0001", d.Code)
	assert.Equal(t, "Lexer", d.Category)
	assert.Equal(t, "Character is not part of the language", d.Description)
	assert.Equal(t, Position{Line: 4, Column: 1, Offset: 49}, d.Pos)
}

func TestJSONShape(t *testing.T) {
	program, diags := parser.ParseSource("x", parser.StatementValues)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, NewDocument("", program, diags)))

	out := buf.String()
	assert.Contains(t, out, `"type": "PROGRAM"`)
	assert.Contains(t, out, `"name": "x"`)
	assert.Contains(t, out, `"diagnostics": []`)
	assert.NotContains(t, out, `"file"`)
}

func TestToProgramRejectsBadTrees(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want string
	}{
		{"nil", nil, "root must be a PROGRAM node"},
		{"wrong root", &Node{Type: "IDENT"}, "root must be a PROGRAM node"},
		{"expression as statement", &Node{Type: "PROGRAM", Body: []*Node{{Type: "IDENT", Name: "x"}}}, `"IDENT" is not a statement`},
		{"bad operator", &Node{Type: "PROGRAM", Body: []*Node{{
			Type:    "EXPR_STMT",
			Literal: "x",
			Right:   &Node{Type: "INFIX_EXPR", Operator: "%", Left: &Node{Type: "IDENT", Name: "x"}, Right: &Node{Type: "IDENT", Name: "y"}},
		}}}, `unknown operator "%"`},
		{"missing value", &Node{Type: "PROGRAM", Body: []*Node{{
			Type:    "EXPR_STMT",
			Literal: "1",
			Right:   &Node{Type: "INTEGER_LITERAL", Literal: "1"},
		}}}, "has no value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToProgram(tt.root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "yaml", "msgpack"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("pretty")
	assert.Error(t, err)
	assert.True(t, Msgpack.Binary())
	assert.False(t, YAML.Binary())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), JSON)
	assert.ErrorContains(t, err, "decode json")
}

func nodeTypes(program *ast.Program) []ast.NodeType {
	var types []ast.NodeType
	ast.Inspect(program, func(n ast.Node) bool {
		types = append(types, n.NodeType())
		return true
	})
	return types
}
