package unifrac_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/betadiv/tree"
	"github.com/nozzle/betadiv/unifrac"
)

const exampleNewick = "((O1:0.25, O2:0.50):0.25, O3:0.75)root;"

var exampleTable = map[string][]float64{
	"A": {1, 5},
	"B": {2, 3},
	"C": {0, 1},
}

func exampleCalculator(t *testing.T) *unifrac.Calculator {
	t.Helper()
	tr, err := tree.ParseNewick(exampleNewick)
	require.NoError(t, err)
	calc, err := unifrac.New(tr, []string{"O1", "O2"})
	require.NoError(t, err)
	return calc
}

func attribute(t *testing.T, calc *unifrac.Calculator, counts []float64) *unifrac.Attribution {
	t.Helper()
	a, err := calc.Attribute(counts)
	require.NoError(t, err)
	return a
}

func TestAttribute(t *testing.T) {
	tr, err := tree.ParseNewick(exampleNewick)
	require.NoError(t, err)
	calc, err := unifrac.New(tr, []string{"O1", "O2"})
	require.NoError(t, err)

	a := attribute(t, calc, []float64{1, 5})
	assert.Equal(t, 6.0, a.Total)

	o1, _ := tr.Find("O1")
	o2, _ := tr.Find("O2")
	o3, _ := tr.Find("O3")
	inner := tr.Parent(o1)

	assert.Equal(t, 1.0, a.Counts[o1])
	assert.Equal(t, 5.0, a.Counts[o2])
	assert.Equal(t, 0.0, a.Counts[o3], "untabled tip has zero abundance")
	assert.Equal(t, 6.0, a.Counts[inner])
	assert.Equal(t, 6.0, a.Counts[tr.Root()])
	assert.Equal(t, 0.25, a.Lengths[inner])

	assert.InDelta(t, 0.50, calc.RootwardLength(o1), 1e-12)
	assert.InDelta(t, 0.75, calc.RootwardLength(o2), 1e-12)
	assert.InDelta(t, 0.75, calc.RootwardLength(o3), 1e-12)
	assert.Equal(t, 0.0, calc.RootwardLength(tr.Root()))
}

func TestRootLengthIgnored(t *testing.T) {
	tr, err := tree.ParseNewick("((O1:0.25,O2:0.50):0.25,O3:0.75)root:10;")
	require.NoError(t, err)
	calc, err := unifrac.New(tr, []string{"O1", "O2"})
	require.NoError(t, err)

	a := attribute(t, calc, []float64{1, 5})
	c := attribute(t, calc, []float64{0, 1})
	assert.InDelta(t, 0.25, calc.Unweighted(a, c), 1e-9)
	assert.InDelta(t, 0.085714, calc.Weighted(a, c, true), 1e-6)
}

func TestUnweighted(t *testing.T) {
	calc := exampleCalculator(t)
	cases := []struct {
		x, y string
		want float64
	}{
		{"A", "B", 0.0},
		{"A", "C", 0.25},
		{"B", "C", 0.25},
	}
	for _, c := range cases {
		a := attribute(t, calc, exampleTable[c.x])
		b := attribute(t, calc, exampleTable[c.y])
		assert.InDeltaf(t, c.want, calc.Unweighted(a, b), 1e-9, "%s-%s", c.x, c.y)
		assert.Equalf(t, calc.Unweighted(a, b), calc.Unweighted(b, a), "%s-%s symmetric", c.x, c.y)
	}
}

func TestWeighted(t *testing.T) {
	calc := exampleCalculator(t)
	cases := []struct {
		x, y       string
		raw, normd float64
	}{
		{"A", "B", 0.175, 0.128834},
		{"A", "C", 0.125, 0.085714},
		{"B", "C", 0.3, 0.214286},
	}
	for _, c := range cases {
		a := attribute(t, calc, exampleTable[c.x])
		b := attribute(t, calc, exampleTable[c.y])
		assert.InDeltaf(t, c.raw, calc.Weighted(a, b, false), 1e-6, "%s-%s", c.x, c.y)
		assert.InDeltaf(t, c.normd, calc.Weighted(a, b, true), 1e-6, "%s-%s normalized", c.x, c.y)
		assert.Equal(t, calc.Weighted(a, b, false), calc.Weighted(b, a, false))
		assert.Equal(t, calc.Weighted(a, b, true), calc.Weighted(b, a, true))
	}
}

func TestIdenticalSamples(t *testing.T) {
	calc := exampleCalculator(t)
	for name, counts := range exampleTable {
		a := attribute(t, calc, counts)
		b := attribute(t, calc, append([]float64(nil), counts...))
		assert.Equalf(t, 0.0, calc.Unweighted(a, b), name)
		assert.Equalf(t, 0.0, calc.Weighted(a, b, false), name)
		assert.Equalf(t, 0.0, calc.Weighted(a, b, true), name)
	}
}

func TestEmptySamples(t *testing.T) {
	calc := exampleCalculator(t)
	zero := attribute(t, calc, []float64{0, 0})
	other := attribute(t, calc, []float64{0, 0})
	assert.Equal(t, 0.0, calc.Unweighted(zero, other))
	assert.Equal(t, 0.0, calc.Weighted(zero, other, false))
	assert.Equal(t, 0.0, calc.Weighted(zero, other, true))

	// an empty sample contributes zero proportions everywhere
	a := attribute(t, calc, []float64{1, 5})
	assert.Equal(t, 1.0, calc.Unweighted(zero, a))
	assert.InDelta(t, 1.0/6*0.25+5.0/6*0.5+0.25, calc.Weighted(zero, a, false), 1e-12)
}

func TestUnweightedIgnoresAbundance(t *testing.T) {
	tr, err := tree.ParseNewick("(((a:1,b:2):0.5,c:3):1,(d:1,e:4):2);")
	require.NoError(t, err)
	ids := []string{"a", "b", "c", "d", "e"}
	calc, err := unifrac.New(tr, ids)
	require.NoError(t, err)

	x1 := attribute(t, calc, []float64{1, 0, 3, 0, 1})
	y1 := attribute(t, calc, []float64{0, 2, 3, 0, 0})
	x2 := attribute(t, calc, []float64{40, 0, 1, 0, 7})
	y2 := attribute(t, calc, []float64{0, 0.5, 9, 0, 0})

	assert.Equal(t, calc.Unweighted(x1, y1), calc.Unweighted(x2, y2))
	assert.NotEqual(t, calc.Weighted(x1, y1, false), calc.Weighted(x2, y2, false))
}

func TestPairHelpers(t *testing.T) {
	tr, err := tree.ParseNewick(exampleNewick)
	require.NoError(t, err)
	ids := []string{"O1", "O2"}

	d, err := unifrac.UnweightedPair([]float64{1, 5}, []float64{0, 1}, ids, tr)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, d, 1e-9)

	d, err = unifrac.WeightedPair([]float64{2, 3}, []float64{0, 1}, ids, tr, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, d, 1e-9)

	_, err = unifrac.WeightedPair([]float64{2, 3, 4}, []float64{0, 1}, ids, tr, false)
	assert.ErrorIs(t, err, unifrac.ErrCountLength)
}

func TestNewErrors(t *testing.T) {
	tr, err := tree.ParseNewick("((O1:1,O2:1):1,(O3:1,O3:1):1);")
	require.NoError(t, err)

	_, err = unifrac.New(nil, []string{"O1"})
	assert.ErrorIs(t, err, unifrac.ErrNilTree)

	_, err = unifrac.New(tr, []string{"O1", "O9"})
	assert.ErrorIs(t, err, unifrac.ErrMissingTip)

	_, err = unifrac.New(tr, []string{"O1", "O1"})
	assert.ErrorIs(t, err, unifrac.ErrDuplicateOTU)

	_, err = unifrac.New(tr, []string{"O3"})
	assert.ErrorIs(t, err, unifrac.ErrDuplicateTip)

	// duplicated tips that no OTU id names are tolerated
	_, err = unifrac.New(tr, []string{"O1", "O2"})
	assert.NoError(t, err)

	// internal node labels are not tips
	inner, err := tree.ParseNewick("((O1:1,O2:1)X:1,O3:1);")
	require.NoError(t, err)
	_, err = unifrac.New(inner, []string{"X"})
	assert.True(t, errors.Is(err, unifrac.ErrMissingTip))
}

func TestDeepTree(t *testing.T) {
	const depth = 100000
	tr := tree.New()
	cur := tr.Root()
	ids := make([]string, 0, depth)
	for i := 0; i < depth; i++ {
		id := "t" + strconv.Itoa(i)
		tr.AddChild(cur, id, 1)
		ids = append(ids, id)
		cur = tr.AddChild(cur, "", 1)
	}

	calc, err := unifrac.New(tr, ids)
	require.NoError(t, err)

	u := make([]float64, depth)
	v := make([]float64, depth)
	u[0] = 1
	v[depth-1] = 1
	a := attribute(t, calc, u)
	b := attribute(t, calc, v)
	assert.Equal(t, 1.0, a.Counts[tr.Root()])
	d := calc.Unweighted(a, b)
	assert.Greater(t, d, 0.99)
	assert.LessOrEqual(t, d, 1.0)
}

func BenchmarkWeighted(b *testing.B) {
	tr, err := tree.ParseNewick("(((a:1,b:2):0.5,c:3):1,(d:1,e:4):2);")
	require.NoError(b, err)
	calc, err := unifrac.New(tr, []string{"a", "b", "c", "d", "e"})
	require.NoError(b, err)
	x, _ := calc.Attribute([]float64{1, 0, 3, 0, 1})
	y, _ := calc.Attribute([]float64{0, 2, 3, 0, 0})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.Weighted(x, y, true)
	}
}
