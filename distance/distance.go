// Package distance provides pairwise distance metrics between two
// abundance vectors of equal length.
package distance

import "sort"

// Func is a distance function between two vectors.
type Func func(x, y []float64) float64

// Registry maps metric names to their implementations.
var Registry = map[string]Func{
	// Minkowski family
	"euclidean":   Euclidean,
	"sqeuclidean": SquaredEuclidean,
	"cityblock":   Manhattan,
	"manhattan":   Manhattan,
	"chebyshev":   Chebyshev,

	// Angular metrics
	"cosine":      Cosine,
	"correlation": Correlation,

	// Ecological metrics
	"braycurtis": BrayCurtis,
	"canberra":   Canberra,

	// Binary metrics
	"hamming": Hamming,
	"jaccard": Jaccard,
}

// Get returns the distance function for the given metric name.
func Get(name string) (Func, bool) {
	f, ok := Registry[name]
	return f, ok
}

// Names returns the registered metric names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
