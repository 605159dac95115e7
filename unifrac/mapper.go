package unifrac

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Attribution is the edge-attribution record of one sample. Counts[i] is
// the summed abundance of every tip below the edge owned by node i, so a
// tip holds its own count and the root holds Total. Lengths is shared
// with the Calculator and must not be modified.
type Attribution struct {
	Counts  []float64
	Lengths []float64
	Total   float64
}

// Calculator maps samples onto a fixed tree and OTU ordering. It is safe
// for concurrent use once built.
type Calculator struct {
	root      int
	parent    []int
	postorder []int
	tips      []int
	// lengths[i] is the branch length above node i, 0 for the root.
	lengths []float64
	// rootward[i] is the path length from node i up to the root.
	rootward []float64
	// columns[j] is the tip node of OTU j.
	columns []int
}

// New resolves otuIDs against the tips of t. Tips that no OTU id names
// stay in the topology with zero abundance in every sample.
func New(t Tree, otuIDs []string) (*Calculator, error) {
	if t == nil {
		return nil, ErrNilTree
	}

	n := t.Len()
	c := &Calculator{
		root:      t.Root(),
		parent:    make([]int, n),
		postorder: t.Postorder(),
		tips:      t.Tips(),
		lengths:   make([]float64, n),
		rootward:  make([]float64, n),
		columns:   make([]int, len(otuIDs)),
	}

	for i := 0; i < n; i++ {
		c.parent[i] = t.Parent(i)
		if i != c.root {
			c.lengths[i] = t.Length(i)
		}
	}

	// parents precede children when walking the postorder backwards
	for k := len(c.postorder) - 1; k >= 0; k-- {
		i := c.postorder[k]
		if p := c.parent[i]; p >= 0 {
			c.rootward[i] = c.rootward[p] + c.lengths[i]
		}
	}

	byLabel := make(map[string]int, len(c.tips))
	for _, tip := range c.tips {
		label := t.Label(tip)
		if _, dup := byLabel[label]; dup {
			byLabel[label] = -1
			continue
		}
		byLabel[label] = tip
	}

	seen := make(map[string]struct{}, len(otuIDs))
	for j, id := range otuIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOTU, id)
		}
		seen[id] = struct{}{}

		tip, ok := byLabel[id]
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %q", ErrMissingTip, id)
		case tip < 0:
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTip, id)
		}
		c.columns[j] = tip
	}

	return c, nil
}

// NumOTUs returns the number of OTU columns the calculator expects.
func (c *Calculator) NumOTUs() int { return len(c.columns) }

// Attribute maps one sample's counts, ordered like the OTU ids given to
// New, onto every edge of the tree.
func (c *Calculator) Attribute(counts []float64) (*Attribution, error) {
	if len(counts) != len(c.columns) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCountLength, len(counts), len(c.columns))
	}

	acc := make([]float64, len(c.parent))
	for j, tip := range c.columns {
		acc[tip] = counts[j]
	}
	for _, i := range c.postorder {
		if p := c.parent[i]; p >= 0 {
			acc[p] += acc[i]
		}
	}

	return &Attribution{
		Counts:  acc,
		Lengths: c.lengths,
		Total:   floats.Sum(counts),
	}, nil
}

// RootwardLength returns the summed branch length from node i to the root.
func (c *Calculator) RootwardLength(i int) float64 { return c.rootward[i] }
