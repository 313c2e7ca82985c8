package ast

// Inspect walks the tree rooted at node depth-first, calling fn for each node in source
// order. If fn returns false the children of that node are skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Inspect(s, fn)
		}
	case *LetStatement:
		if n.Name != nil {
			Inspect(n.Name, fn)
		}
		if n.Value != nil {
			Inspect(n.Value, fn)
		}
	case *ReturnStatement:
		if n.ReturnValue != nil {
			Inspect(n.ReturnValue, fn)
		}
	case *ExpressionStatement:
		if n.Expression != nil {
			Inspect(n.Expression, fn)
		}
	case *PrefixExpression:
		if n.Right != nil {
			Inspect(n.Right, fn)
		}
	case *InfixExpression:
		if n.Left != nil {
			Inspect(n.Left, fn)
		}
		if n.Right != nil {
			Inspect(n.Right, fn)
		}
	}
}

// CollectAllNodes returns every node under root in the order Inspect visits them.
func CollectAllNodes(root Node) []Node {
	var nodes []Node
	Inspect(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}
