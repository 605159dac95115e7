// Package tree provides a rooted phylogenetic tree stored as a node-index
// arena. Nodes refer to their parent and children by index, so traversals
// are iterative and never recurse on deep trees.
package tree

// None is the parent index of the root.
const None = -1

// Node is a single vertex of a Tree.
type Node struct {
	Label string
	// Length is the branch length to the parent. It is zero when the
	// source did not specify one; see HasLength.
	Length    float64
	HasLength bool
	Parent    int
	Children  []int
}

// Tree is a rooted tree. The root is always node 0.
type Tree struct {
	nodes []Node
}

// New returns a tree holding only an unlabeled root.
func New() *Tree {
	return &Tree{nodes: []Node{{Parent: None}}}
}

// AddChild appends a child below parent and returns its index.
func (t *Tree) AddChild(parent int, label string, length float64) int {
	idx := t.addNode(parent)
	t.nodes[idx].Label = label
	t.nodes[idx].Length = length
	t.nodes[idx].HasLength = true
	return idx
}

func (t *Tree) addNode(parent int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{Parent: parent})
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// SetLabel sets the label of node i.
func (t *Tree) SetLabel(i int, label string) { t.nodes[i].Label = label }

// SetLength sets the branch length of node i.
func (t *Tree) SetLength(i int, length float64) {
	t.nodes[i].Length = length
	t.nodes[i].HasLength = true
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the index of the root.
func (t *Tree) Root() int { return 0 }

// Node returns a copy of node i.
func (t *Tree) Node(i int) Node {
	n := t.nodes[i]
	n.Children = append([]int(nil), n.Children...)
	return n
}

// Parent returns the parent index of node i, or None for the root.
func (t *Tree) Parent(i int) int { return t.nodes[i].Parent }

// Children returns the child indices of node i. The slice must not be
// modified.
func (t *Tree) Children(i int) []int { return t.nodes[i].Children }

// Length returns the branch length from node i to its parent.
func (t *Tree) Length(i int) float64 { return t.nodes[i].Length }

// Label returns the label of node i.
func (t *Tree) Label(i int) string { return t.nodes[i].Label }

// IsTip reports whether node i has no children.
func (t *Tree) IsTip(i int) bool { return len(t.nodes[i].Children) == 0 }

// Tips returns the tip indices in left-to-right order.
func (t *Tree) Tips() []int {
	var tips []int
	for _, i := range t.Postorder() {
		if t.IsTip(i) {
			tips = append(tips, i)
		}
	}
	return tips
}

// Postorder returns every node index with children ahead of their
// parent and siblings in left-to-right order. The root is last.
func (t *Tree) Postorder() []int {
	order := make([]int, 0, len(t.nodes))
	stack := []int{t.Root()}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, i)
		stack = append(stack, t.nodes[i].Children...)
	}
	for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
		order[l], order[r] = order[r], order[l]
	}
	return order
}

// Find returns the index of the first node, in postorder, labeled label.
func (t *Tree) Find(label string) (int, bool) {
	for _, i := range t.Postorder() {
		if t.nodes[i].Label == label {
			return i, true
		}
	}
	return None, false
}
