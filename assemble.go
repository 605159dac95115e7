package betadiv

import (
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/nozzle/betadiv/distmat"
	"github.com/nozzle/betadiv/internal/parallel"
	"github.com/nozzle/betadiv/unifrac"
)

// Compute applies metric to every unordered pair of rows of table and
// returns the distances labeled by sampleIDs. Row i of table holds the
// abundances of sample sampleIDs[i].
//
// Each pair is computed once and mirrored; the diagonal is always
// exactly 0. Inputs are validated before any distance is computed and
// the first failure aborts the whole computation.
func Compute(metric Metric, table [][]float64, sampleIDs []string, opts Options) (*distmat.DistanceMatrix, error) {
	start := time.Now()
	log := opts.logger()

	r, err := resolve(metric, table, sampleIDs, opts)
	if err != nil {
		return nil, err
	}

	n := len(sampleIDs)
	workers := parallel.Workers(opts.NumWorkers)
	log.Debug("computing beta diversity",
		zap.String("metric", r.name),
		zap.Int("samples", n),
		zap.Int("workers", workers))

	pair, err := pairFunc(r, table, opts, workers)
	if err != nil {
		return nil, err
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	dists := make([]float64, len(pairs))
	err = parallel.ParallelFor(0, len(pairs), workers, func(k int) error {
		d, err := pair(pairs[k][0], pairs[k][1])
		if err != nil {
			return err
		}
		dists[k] = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	var data *mat.SymDense
	if n > 0 {
		data = mat.NewSymDense(n, nil)
		for k, p := range pairs {
			data.SetSym(p[0], p[1], dists[k])
		}
	}

	dm, err := distmat.FromSymDense(data, sampleIDs)
	if err != nil {
		return nil, newError(DuplicateID, err, "packaging distance matrix")
	}

	log.Debug("computed beta diversity",
		zap.String("metric", r.name),
		zap.Int("pairs", len(pairs)),
		zap.Duration("elapsed", time.Since(start)))
	return dm, nil
}

// pairFunc returns the distance between rows i and j of table. For the
// built-in phylogenetic metrics every sample is mapped onto the tree once
// up front and the records are shared by all of its pairs.
func pairFunc(r resolved, table [][]float64, opts Options, workers int) (func(i, j int) (float64, error), error) {
	if r.phylo == notPhylogenetic {
		return func(i, j int) (float64, error) {
			d, err := r.fn(table[i], table[j], opts)
			if err != nil {
				return 0, newError(MetricFailure, err, "%s between rows %d and %d", r.name, i, j)
			}
			return d, nil
		}, nil
	}

	calc, err := unifrac.New(opts.Tree, opts.OTUIDs)
	if err != nil {
		return nil, newError(MissingPhylogeneticInput, err, "resolving otu ids against tree")
	}
	records, err := parallel.ParallelMap(0, len(table), workers, func(i int) (*unifrac.Attribution, error) {
		return calc.Attribute(table[i])
	})
	if err != nil {
		return nil, newError(ShapeMismatch, err, "mapping samples onto tree")
	}
	opts.logger().Debug("mapped samples onto tree",
		zap.Int("samples", len(records)),
		zap.Int("otus", calc.NumOTUs()))

	if r.phylo == weighted {
		normalized := opts.Normalized
		return func(i, j int) (float64, error) {
			return calc.Weighted(records[i], records[j], normalized), nil
		}, nil
	}
	return func(i, j int) (float64, error) {
		return calc.Unweighted(records[i], records[j]), nil
	}, nil
}
