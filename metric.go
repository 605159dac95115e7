package betadiv

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/nozzle/betadiv/distance"
	"github.com/nozzle/betadiv/unifrac"
)

// DistanceFunc computes the distance between two abundance vectors of
// equal length. opts carries the metric-specific settings.
type DistanceFunc func(u, v []float64, opts Options) (float64, error)

// Metric selects the distance applied to each pair of samples: either a
// registered name or a function supplied by the caller.
type Metric struct {
	name string
	fn   DistanceFunc
}

// Named refers to a registered metric.
func Named(name string) Metric { return Metric{name: name} }

// Custom wraps a caller-supplied function. name is only used in logs
// and errors.
func Custom(name string, fn DistanceFunc) Metric { return Metric{name: name, fn: fn} }

// Name returns the metric name.
func (m Metric) Name() string { return m.name }

// IsCustom reports whether m carries its own function.
func (m Metric) IsCustom() bool { return m.fn != nil }

func (m Metric) String() string {
	if m.IsCustom() {
		return "custom(" + m.name + ")"
	}
	return m.name
}

// Built-in metrics.
var (
	Euclidean         = Named("euclidean")
	BrayCurtis        = Named("braycurtis")
	UnweightedUniFrac = Named("unweighted_unifrac")
	WeightedUniFrac   = Named("weighted_unifrac")
)

type phyloKind int

const (
	notPhylogenetic phyloKind = iota
	unweighted
	weighted
)

type entry struct {
	fn    DistanceFunc
	phylo phyloKind
}

var (
	registryMu sync.RWMutex
	registry   = builtins()
)

func builtins() map[string]entry {
	m := make(map[string]entry, len(distance.Registry)+2)
	for name, f := range distance.Registry {
		m[name] = entry{fn: vectorFunc(f)}
	}
	m[UnweightedUniFrac.name] = entry{fn: UnweightedUniFracFunc, phylo: unweighted}
	m[WeightedUniFrac.name] = entry{fn: WeightedUniFracFunc, phylo: weighted}
	return m
}

// vectorFunc adapts a plain vector metric to the DistanceFunc shape.
func vectorFunc(f distance.Func) DistanceFunc {
	return func(u, v []float64, _ Options) (float64, error) {
		if len(u) != len(v) {
			return 0, newError(ShapeMismatch, nil, "vectors have lengths %d and %d", len(u), len(v))
		}
		return f(u, v), nil
	}
}

// Register adds a named metric. Built-in and previously registered names
// cannot be replaced.
func Register(name string, fn DistanceFunc) error {
	if name == "" || fn == nil {
		return errors.New("betadiv: register needs a name and a function")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("betadiv: metric %q already registered", name)
	}
	registry[name] = entry{fn: fn}
	return nil
}

// Metrics returns the registered metric names in sorted order.
func Metrics() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPhylogenetic reports whether name is a registered metric that needs
// a tree and OTU ids.
func IsPhylogenetic(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name].phylo != notPhylogenetic
}

// UnweightedUniFracFunc is unweighted UniFrac in DistanceFunc shape.
func UnweightedUniFracFunc(u, v []float64, opts Options) (float64, error) {
	if err := phylogeneticInputs(opts); err != nil {
		return 0, err
	}
	return unifrac.UnweightedPair(u, v, opts.OTUIDs, opts.Tree)
}

// WeightedUniFracFunc is weighted UniFrac in DistanceFunc shape. It
// honors opts.Normalized.
func WeightedUniFracFunc(u, v []float64, opts Options) (float64, error) {
	if err := phylogeneticInputs(opts); err != nil {
		return 0, err
	}
	return unifrac.WeightedPair(u, v, opts.OTUIDs, opts.Tree, opts.Normalized)
}

func phylogeneticInputs(opts Options) error {
	switch {
	case opts.Tree == nil && opts.OTUIDs == nil:
		return newError(MissingPhylogeneticInput, nil, "tree and otu ids are required")
	case opts.Tree == nil:
		return newError(MissingPhylogeneticInput, nil, "tree is required")
	case opts.OTUIDs == nil:
		return newError(MissingPhylogeneticInput, nil, "otu ids are required")
	}
	return nil
}

// resolved is a metric ready to be applied to the validated table.
type resolved struct {
	name  string
	fn    DistanceFunc
	phylo phyloKind
}

// resolve validates the inputs and looks the metric up. It never
// computes a distance.
func resolve(m Metric, table [][]float64, sampleIDs []string, opts Options) (resolved, error) {
	if len(table) != len(sampleIDs) {
		return resolved{}, newError(ShapeMismatch, nil,
			"table has %d rows but %d sample ids were given", len(table), len(sampleIDs))
	}

	seen := make(map[string]struct{}, len(sampleIDs))
	for _, id := range sampleIDs {
		if _, dup := seen[id]; dup {
			return resolved{}, newError(DuplicateID, nil, "%q", id)
		}
		seen[id] = struct{}{}
	}

	r, err := lookup(m)
	if err != nil {
		return resolved{}, err
	}

	cols := -1
	for i, row := range table {
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			return resolved{}, newError(ShapeMismatch, nil,
				"row %d (%s) has %d columns, want %d", i, sampleIDs[i], len(row), cols)
		}
	}

	if r.phylo != notPhylogenetic {
		if err := phylogeneticInputs(opts); err != nil {
			return resolved{}, err
		}
		if cols >= 0 && len(opts.OTUIDs) != cols {
			return resolved{}, newError(ShapeMismatch, nil,
				"table has %d columns but %d otu ids were given", cols, len(opts.OTUIDs))
		}
	}

	for i, row := range table {
		for j, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return resolved{}, newError(InvalidCounts, nil,
					"sample %s column %d has count %g", sampleIDs[i], j, v)
			}
		}
	}

	return r, nil
}

func lookup(m Metric) (resolved, error) {
	if m.fn != nil {
		return resolved{name: m.String(), fn: m.fn}, nil
	}
	registryMu.RLock()
	e, ok := registry[m.name]
	registryMu.RUnlock()
	if !ok {
		return resolved{}, newError(UnknownMetric, nil, "%q is not registered", m.name)
	}
	return resolved{name: m.name, fn: e.fn, phylo: e.phylo}, nil
}
