package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewick(t *testing.T) {
	tr, err := ParseNewick("((O1:0.25, O2:0.50):0.25, O3:0.75)root;")
	require.NoError(t, err)
	require.Equal(t, 5, tr.Len())
	assert.Equal(t, "root", tr.Label(tr.Root()))

	want := map[string]float64{"O1": 0.25, "O2": 0.50, "O3": 0.75}
	for label, length := range want {
		i, ok := tr.Find(label)
		require.Truef(t, ok, "tip %s", label)
		assert.True(t, tr.IsTip(i))
		assert.InDelta(t, length, tr.Length(i), 1e-12)
	}

	o1, _ := tr.Find("O1")
	inner := tr.Parent(o1)
	assert.Equal(t, tr.Root(), tr.Parent(inner))
	assert.InDelta(t, 0.25, tr.Length(inner), 1e-12)
	assert.False(t, tr.Node(tr.Root()).HasLength)
}

func TestParseNewickLabels(t *testing.T) {
	tr, err := ParseNewick("('it''s here':1,Homo_sapiens:2e-1[&&NHX:S=human],(C,D)E)F")
	require.NoError(t, err)

	i, ok := tr.Find("it's here")
	require.True(t, ok)
	assert.Equal(t, 1.0, tr.Length(i))

	i, ok = tr.Find("Homo sapiens")
	require.True(t, ok)
	assert.InDelta(t, 0.2, tr.Length(i), 1e-12)

	e, ok := tr.Find("E")
	require.True(t, ok)
	assert.Len(t, tr.Children(e), 2)
	assert.False(t, tr.Node(e).HasLength)
	assert.Equal(t, "F", tr.Label(tr.Root()))
}

func TestReadNewick(t *testing.T) {
	tr, err := ReadNewick(strings.NewReader("(A:1,B:2);\n"))
	require.NoError(t, err)
	assert.Len(t, tr.Tips(), 2)
}

func TestParseNewickErrors(t *testing.T) {
	cases := map[string]string{
		"empty":              "   ",
		"unbalanced open":    "((A,B);",
		"unbalanced close":   "(A,B));",
		"bad length":         "(A:x,B);",
		"double length":      "(A:1:2,B);",
		"double label":       "(A B,C);",
		"label after len":    "(A:1 B,C);",
		"open after close":   "(A,B)(C);",
		"comma at top":       "A,B;",
		"unterminated quote": "('A,B);",
		"unterminated note":  "(A[comment,B);",
		"trailing data":      "(A,B);(C,D);",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseNewick(src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNewickFormat))
			var fe *FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}
}
