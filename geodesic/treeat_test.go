package geodesic_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/geodesic"
	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/split"
)

func TestTreeAt_Endpoints(t *testing.T) {
	ctx := context.Background()
	for _, pair := range [][2]string{
		{big1, big2},
		{mid1, mid2},
		{"((a:1,b:1):1,c:1,d:1);", "((a:1,c:1):1,b:1,d:1);"},
	} {
		a, b := parse(t, pair[0]), parse(t, pair[1])

		start, err := geodesic.TreeAt(ctx, a, b, 0)
		require.NoError(t, err)
		assert.True(t, start.ApproxEqual(a, 1e-9), "position 0: got %s want %s", start, a)

		end, err := geodesic.TreeAt(ctx, a, b, 1)
		require.NoError(t, err)
		assert.True(t, end.ApproxEqual(b, 1e-9), "position 1: got %s want %s", end, b)
	}
}

func TestTreeAt_ThroughConePoint(t *testing.T) {
	ctx := context.Background()
	a := parse(t, "(((a:1,b:1):1,c:1):1,((d:1,e:1):1,f:1):1);")
	b := parse(t, "(((a:1,c:1):1,b:1):1,((d:1,e:1):3,f:1):1);")

	cases := []struct {
		pos   float64
		split string // extra split beside the two common ones, "" for none
		len   float64
	}{
		{0.25, "110000", 0.5},
		{0.5, "", 0},
		{0.75, "101000", 0.5},
	}
	for _, tc := range cases {
		tr, err := geodesic.TreeAt(ctx, a, b, tc.pos)
		require.NoError(t, err)

		abc, ok := tr.AttribOfSplit(split.New(6, 0, 1, 2))
		require.True(t, ok)
		assert.InDelta(t, 2.0, abc.BranchLength(), 1e-12)
		de, ok := tr.AttribOfSplit(split.New(6, 3, 4))
		require.True(t, ok)
		assert.InDelta(t, 1+2*tc.pos, de.BranchLength(), 1e-12, "common edges move linearly")

		if tc.split == "" {
			assert.Equal(t, 2, tr.NumEdges(), "position %g is the cone point", tc.pos)
			continue
		}
		require.Equal(t, 3, tr.NumEdges())
		s, err := split.Parse(tc.split)
		require.NoError(t, err)
		got, ok := tr.AttribOfSplit(s)
		require.True(t, ok, "position %g", tc.pos)
		assert.InDelta(t, tc.len, got.BranchLength(), 1e-12)
	}
}

func TestTreeAt_SameTopologyIsLinear(t *testing.T) {
	a := parse(t, "((a:1,b:1):2,c:1,(d:1,e:1):3);")
	b := parse(t, "((a:3,b:1):4,c:2,(d:1,e:1):1);")

	tr, err := geodesic.TreeAt(context.Background(), a, b, 0.5)
	require.NoError(t, err)

	want, err := phylo.Parse("((a:2,b:1):3,c:1.5,(d:1,e:1):2);", false)
	require.NoError(t, err)
	assert.True(t, tr.ApproxEqual(want, 1e-12), "got %s", tr)
}

func TestTreeAt_DistancesAddUp(t *testing.T) {
	ctx := context.Background()
	a, b := parse(t, big1), parse(t, big2)
	total, err := geodesic.Compute(ctx, a, b)
	require.NoError(t, err)

	for _, pos := range []float64{0.1, 0.3, 0.5, 0.8} {
		mid, err := geodesic.TreeAt(ctx, a, b, pos)
		require.NoError(t, err)
		first, err := geodesic.Compute(ctx, a, mid)
		require.NoError(t, err)
		second, err := geodesic.Compute(ctx, mid, b)
		require.NoError(t, err)

		assert.InDelta(t, pos*total.Distance(), first.Distance(), 1e-6, "position %g", pos)
		assert.InDelta(t, (1-pos)*total.Distance(), second.Distance(), 1e-6, "position %g", pos)
	}
}

func TestTreeAt_PositionOutOfRange(t *testing.T) {
	a := parse(t, "((a:1,b:1):1,c:1,d:1);")
	for _, pos := range []float64{-0.01, 1.01, math.NaN()} {
		tr, err := geodesic.TreeAt(context.Background(), a, a, pos)
		assert.True(t, errors.Is(err, geodesic.ErrPositionOutOfRange), "position %g", pos)
		assert.Nil(t, tr)
	}
}

func TestTreeAt_VectorAttributes(t *testing.T) {
	leaves := []string{"a", "b", "c", "d"}
	ab := split.New(4, 0, 1)
	a, err := phylo.NewTree([]phylo.Edge{phylo.NewEdge(ab, attrib.Of(2, 0), 0)}, leaves, nil)
	require.NoError(t, err)
	b, err := phylo.NewTree([]phylo.Edge{phylo.NewEdge(ab, attrib.Of(0, 2), 0)}, leaves, nil)
	require.NoError(t, err)

	tr, err := geodesic.TreeAt(context.Background(), a, b, 0.5)
	require.NoError(t, err)
	got, ok := tr.AttribOfSplit(ab)
	require.True(t, ok)
	assert.True(t, got.ApproxEqual(attrib.Of(1, 1), 1e-12))

	g, err := geodesic.Compute(context.Background(), a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(8), g.Distance(), 1e-12)
}
