// Package betadiv computes beta diversity: the pairwise dissimilarity
// between biological samples described as OTU abundance vectors.
//
// Any registered metric, or a caller-supplied function, is applied to
// every unordered pair of samples and the results are assembled into a
// symmetric, zero-diagonal distance matrix. The phylogenetic metrics
// (unweighted and weighted UniFrac) additionally need a rooted tree and
// the OTU id of every table column.
//
// Basic usage:
//
//	t, _ := tree.ParseNewick("((O1:0.25,O2:0.50):0.25,O3:0.75)root;")
//	opts := betadiv.DefaultOptions()
//	opts.OTUIDs = []string{"O1", "O2"}
//	opts.Tree = t
//	dm, err := betadiv.Compute(betadiv.WeightedUniFrac, table, []string{"A", "B", "C"}, opts)
package betadiv

import (
	"go.uber.org/zap"

	"github.com/nozzle/betadiv/unifrac"
)

// Options configures a computation. Fields a metric does not use are
// ignored.
type Options struct {
	// OTUIDs labels the table columns. Required by phylogenetic metrics.
	OTUIDs []string

	// Tree is the rooted tree the OTU ids are resolved against.
	// Required by phylogenetic metrics.
	Tree unifrac.Tree

	// Normalized divides weighted UniFrac by the abundance-weighted
	// tip-to-root length, bounding it to [0, 1].
	// Default: false
	Normalized bool

	// NumWorkers for parallel processing.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int

	// Logger receives debug output. nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Normalized: false,
		NumWorkers: 0,
		Logger:     zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
