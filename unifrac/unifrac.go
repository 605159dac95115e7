package unifrac

import "math"

// Unweighted returns the fraction of branch length observed in exactly one
// of the two samples:
//
//	(union - shared) / union
//
// where an edge counts as observed when the sample has a positive count
// below it. Two samples observing no edge at all are at distance 0.
func (c *Calculator) Unweighted(a, b *Attribution) float64 {
	var shared, union float64
	for i, length := range c.lengths {
		if i == c.root {
			continue
		}
		inA := a.Counts[i] > 0
		inB := b.Counts[i] > 0
		if !inA && !inB {
			continue
		}
		union += length
		if inA && inB {
			shared += length
		}
	}
	if union == 0 {
		return 0
	}
	return (union - shared) / union
}

// Weighted returns the abundance-weighted UniFrac distance
//
//	sum over edges of |a_i/A - b_i/B| * length_i
//
// where A and B are the sample totals. A sample with no counts
// contributes zero proportions. When normalized is set, the result is
// divided by
//
//	sum over tips of (a_t/A + b_t/B) * rootward_t
//
// which bounds it to [0, 1]; a zero divisor yields 0.
func (c *Calculator) Weighted(a, b *Attribution, normalized bool) float64 {
	sa := scale(a.Total)
	sb := scale(b.Total)

	var u float64
	for i, length := range c.lengths {
		if i == c.root {
			continue
		}
		u += math.Abs(a.Counts[i]*sa-b.Counts[i]*sb) * length
	}
	if !normalized {
		return u
	}

	var d float64
	for _, tip := range c.tips {
		d += (a.Counts[tip]*sa + b.Counts[tip]*sb) * c.rootward[tip]
	}
	if d == 0 {
		return 0
	}
	return u / d
}

func scale(total float64) float64 {
	if total == 0 {
		return 0
	}
	return 1 / total
}

// UnweightedPair computes unweighted UniFrac for a single pair of count
// vectors. Use a Calculator when comparing many samples.
func UnweightedPair(u, v []float64, otuIDs []string, t Tree) (float64, error) {
	c, a, b, err := pair(u, v, otuIDs, t)
	if err != nil {
		return 0, err
	}
	return c.Unweighted(a, b), nil
}

// WeightedPair computes weighted UniFrac for a single pair of count
// vectors.
func WeightedPair(u, v []float64, otuIDs []string, t Tree, normalized bool) (float64, error) {
	c, a, b, err := pair(u, v, otuIDs, t)
	if err != nil {
		return 0, err
	}
	return c.Weighted(a, b, normalized), nil
}

func pair(u, v []float64, otuIDs []string, t Tree) (*Calculator, *Attribution, *Attribution, error) {
	c, err := New(t, otuIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	a, err := c.Attribute(u)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := c.Attribute(v)
	if err != nil {
		return nil, nil, nil, err
	}
	return c, a, b, nil
}
