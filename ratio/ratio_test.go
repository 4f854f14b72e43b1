package ratio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/ratio"
	"github.com/katalvlaran/treespace/split"
)

const leaves = 8

// edge returns an edge over leaves {i, i+1} with the given length.
func edge(i int, length float64) phylo.Edge {
	return phylo.NewEdge(split.New(leaves, i, i+1), attrib.Of(length), i)
}

// mk builds a ratio with one E-edge and one F-edge of the given lengths.
func mk(e, f float64) ratio.Ratio {
	return ratio.New([]phylo.Edge{edge(0, e)}, []phylo.Edge{edge(2, f)})
}

func TestRatio_NormsAndTime(t *testing.T) {
	r := ratio.New([]phylo.Edge{edge(0, 3), edge(1, 4)}, []phylo.Edge{edge(3, 5)})
	assert.InDelta(t, 5.0, r.ELength(), 1e-12)
	assert.InDelta(t, 5.0, r.FLength(), 1e-12)
	assert.InDelta(t, 0.5, r.Time(), 1e-12)
	assert.InDelta(t, 1.0, r.Value(), 1e-12)
	assert.Len(t, r.EEdges(), 2)
	assert.False(t, r.IsEmpty())

	assert.InDelta(t, 0.75, mk(3, 1).Time(), 1e-12)
	assert.True(t, math.IsInf(ratio.New([]phylo.Edge{edge(0, 1)}, nil).Value(), 1))

	var zero ratio.Ratio
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0.0, zero.Time())
	assert.Equal(t, 0.0, zero.Value())
}

func TestRatio_LargeLengthsStayFinite(t *testing.T) {
	r := ratio.New([]phylo.Edge{edge(0, 3e200), edge(1, 4e200)}, []phylo.Edge{edge(3, 1)})
	assert.InEpsilon(t, 5e200, r.ELength(), 1e-12)
	assert.InEpsilon(t, 5e200+1, ratio.Sequence{r}.Distance(), 1e-12)
}

func TestRatio_InputsAreCopied(t *testing.T) {
	e := []phylo.Edge{edge(0, 1)}
	r := ratio.New(e, nil)
	e[0] = edge(4, 9)
	assert.Equal(t, 0, r.EEdges()[0].OriginalID)

	got := r.EEdges()
	got[0] = edge(5, 9)
	assert.Equal(t, 0, r.EEdges()[0].OriginalID)
}

func TestRatio_ReverseAndCombine(t *testing.T) {
	r := mk(3, 1)
	rev := r.Reverse()
	assert.Equal(t, r.ELength(), rev.FLength())
	assert.Equal(t, r.FLength(), rev.ELength())
	assert.InDelta(t, 1-r.Time(), rev.Time(), 1e-12)

	c := ratio.Combine(mk(3, 1), mk(4, 2))
	assert.InDelta(t, 5.0, c.ELength(), 1e-12)
	assert.InDelta(t, math.Sqrt(5), c.FLength(), 1e-12)
	assert.Len(t, c.EEdges(), 2)
	assert.Len(t, c.FEdges(), 2)
}

func TestRatio_String(t *testing.T) {
	assert.Equal(t, "[11000000]/[00110000] 3/1", mk(3, 1).String())
}

func TestSequence_Distance(t *testing.T) {
	s := ratio.Sequence{mk(1, 1), mk(2, 1)}
	assert.InDelta(t, math.Sqrt(4+9), s.Distance(), 1e-12)
	assert.Equal(t, 0.0, ratio.Sequence(nil).Distance())
}

func TestSequence_NonDescendingMinDist(t *testing.T) {
	// Already ordered: nothing merges.
	ok := ratio.Sequence{mk(1, 3), mk(3, 1)}
	assert.True(t, ok.IsNonDescending())
	assert.Len(t, ok.NonDescendingMinDist(), 2)

	// One inversion merges into a single ratio.
	inv := ratio.Sequence{mk(3, 1), mk(1, 3)}
	assert.False(t, inv.IsNonDescending())
	got := inv.NonDescendingMinDist()
	require.Len(t, got, 1)
	assert.InDelta(t, math.Sqrt(10), got[0].ELength(), 1e-12)
	assert.InDelta(t, math.Sqrt(10), got[0].FLength(), 1e-12)
	assert.Len(t, inv, 2, "receiver is not modified")

	// A merge that falls behind its left neighbour cascades backwards.
	cascade := ratio.Sequence{mk(3, 7), mk(6, 4), mk(0.5, 20)}
	got = cascade.NonDescendingMinDist()
	require.Len(t, got, 1)
	assert.InDelta(t, math.Sqrt(9+36+0.25), got[0].ELength(), 1e-12)
	assert.InDelta(t, math.Sqrt(49+16+400), got[0].FLength(), 1e-12)
	assert.True(t, got.IsNonDescending())

	// A merge that stays ahead of its left neighbour stops there.
	partial := ratio.Sequence{mk(2, 8), mk(3, 2), mk(2, 3)}
	got = partial.NonDescendingMinDist()
	require.Len(t, got, 2)
	assert.InDelta(t, 0.2, got[0].Time(), 1e-12)
	assert.InDelta(t, 0.5, got[1].Time(), 1e-12)
}

func TestSequence_AscendingMinDist(t *testing.T) {
	s := ratio.Sequence{mk(1, 1), mk(2, 2), mk(3, 1)}
	assert.Len(t, s.NonDescendingMinDist(), 3, "equal times are allowed")
	asc := s.AscendingMinDist()
	require.Len(t, asc, 2)
	assert.InDelta(t, 0.5, asc[0].Time(), 1e-12)
	assert.InDelta(t, math.Sqrt(5), asc[0].ELength(), 1e-12)
}

func TestSequence_Reverse(t *testing.T) {
	s := ratio.Sequence{mk(1, 3), mk(3, 1), mk(2, 1)}
	rev := s.Reverse()
	require.Len(t, rev, 3)
	assert.Equal(t, 1.0, rev[0].ELength())
	assert.Equal(t, 2.0, rev[0].FLength())
	assert.Equal(t, 3.0, rev[2].ELength())
	assert.InDelta(t, s.Distance(), rev.Distance(), 1e-12)
	assert.True(t, s.Reverse().Reverse()[1].Time() == s[1].Time())
}

func TestInterleave(t *testing.T) {
	a := ratio.Sequence{mk(1, 3), mk(1, 1)}
	b := ratio.Sequence{mk(2, 2), mk(2, 1)}
	got := ratio.Interleave(a, b)
	require.Len(t, got, 4)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.5, 2.0 / 3}, got.Times(), 1e-12)
	assert.True(t, got.IsNonDescending())

	// On equal times the first argument's ratio leads.
	assert.Equal(t, 1.0, got[1].ELength())
	assert.Equal(t, 2.0, got[2].ELength())

	// Inputs are canonicalised before merging.
	c := ratio.Interleave(ratio.Sequence{mk(3, 1), mk(1, 3)}, nil)
	require.Len(t, c, 1)

	assert.Empty(t, ratio.Interleave(nil, nil))
}
