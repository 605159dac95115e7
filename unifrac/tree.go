// Package unifrac computes unweighted and weighted UniFrac distances
// between two samples placed on a rooted phylogenetic tree.
//
// A Calculator resolves OTU identifiers to tree tips once. Attribute then
// maps one sample's counts onto every edge of the tree in a single
// postorder pass, and Unweighted or Weighted compare two such records.
//
//	calc, err := unifrac.New(t, otuIDs)
//	a, _ := calc.Attribute(countsA)
//	b, _ := calc.Attribute(countsB)
//	d := calc.Weighted(a, b, true)
package unifrac

// Tree is the view of a rooted tree that UniFrac needs. Nodes are
// addressed by index in [0, Len()). Every non-root node i owns the edge
// to Parent(i), whose length is Length(i).
type Tree interface {
	Len() int
	Root() int
	// Parent returns a negative index for the root.
	Parent(i int) int
	Children(i int) []int
	Length(i int) float64
	Label(i int) string
	IsTip(i int) bool
	Tips() []int
	// Postorder lists every node with children before their parent.
	Postorder() []int
}
