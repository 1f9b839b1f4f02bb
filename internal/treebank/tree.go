package treebank

import "strings"

// ParseTree is a node in an ordered, labeled constituency tree. Internal
// nodes carry a phrase category label (NP, VP, ...); a leaf has no children
// and its label is the terminal token itself. Child order is significant.
//
// Trees are built once by the bracket reader and treated as read-only for
// the duration of an analysis run.
type ParseTree struct {
	Label    string
	Children []*ParseTree
}

// NewParseTree creates a tree node with the given label and children.
func NewParseTree(label string, children ...*ParseTree) *ParseTree {
	return &ParseTree{
		Label:    label,
		Children: children,
	}
}

// AddChild appends a child node, preserving left-to-right order.
func (t *ParseTree) AddChild(child *ParseTree) {
	if child != nil {
		t.Children = append(t.Children, child)
	}
}

// IsLeaf returns true if this node has no children.
func (t *ParseTree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Size returns the number of nodes in the subtree rooted at this node,
// counting the node itself and all leaves. A nil tree has size 0.
// Implemented with an explicit work stack so arbitrarily deep parses cannot
// exhaust the host stack.
func (t *ParseTree) Size() int {
	if t == nil {
		return 0
	}

	size := 0
	stack := []*ParseTree{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, node.Children...)
	}
	return size
}

// PostOrder returns the nodes and their labels in post-order: all children
// visited left-to-right, recursively, before the node itself. The two slices
// are parallel and have the same length.
func (t *ParseTree) PostOrder() ([]*ParseTree, []string) {
	if t == nil {
		return nil, nil
	}

	// Iterative post-order: pop into out in (node, right-to-left children)
	// order, then reverse.
	var out []*ParseTree
	stack := []*ParseTree{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, node)
		stack = append(stack, node.Children...)
	}

	nodes := make([]*ParseTree, len(out))
	labels := make([]string, len(out))
	for i, node := range out {
		j := len(out) - 1 - i
		nodes[j] = node
		labels[j] = node.Label
	}
	return nodes, labels
}

// IdentityKey returns a canonical serialization of the subtree's full
// structure, suitable as a memoization key: two subtrees produce the same
// key exactly when they have the same labels, shape, and child order.
func (t *ParseTree) IdentityKey() string {
	if t == nil {
		return ""
	}

	var sb strings.Builder
	t.writeKey(&sb)
	return sb.String()
}

func (t *ParseTree) writeKey(sb *strings.Builder) {
	if t.IsLeaf() {
		sb.WriteString(t.Label)
		return
	}

	sb.WriteByte('(')
	sb.WriteString(t.Label)
	for _, child := range t.Children {
		sb.WriteByte(' ')
		child.writeKey(sb)
	}
	sb.WriteByte(')')
}

// String returns the bracketed form of the tree, e.g. "(NP (DT a) (NN cat))".
func (t *ParseTree) String() string {
	if t == nil {
		return ""
	}
	if t.IsLeaf() {
		return t.Label
	}
	return t.IdentityKey()
}

// Leaves returns the terminal tokens of the tree in surface order.
func (t *ParseTree) Leaves() []string {
	if t == nil {
		return nil
	}

	var leaves []string
	var walk func(node *ParseTree)
	walk = func(node *ParseTree) {
		if node.IsLeaf() {
			leaves = append(leaves, node.Label)
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(t)
	return leaves
}

// Text reconstructs the surface sentence from the tree's leaves. Used for
// traceability in output records, never for distance computation.
func (t *ParseTree) Text() string {
	return strings.Join(t.Leaves(), " ")
}
