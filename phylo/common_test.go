package phylo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/phylo"
)

func parsePair(t *testing.T, a, b string) (*phylo.Tree, *phylo.Tree) {
	t.Helper()
	ta, err := phylo.Parse(a, false)
	require.NoError(t, err)
	tb, err := phylo.Parse(b, false)
	require.NoError(t, err)

	return ta, tb
}

func TestCommonEdges_SharedSplit(t *testing.T) {
	a, b := parsePair(t,
		"((a:1,b:1):2,c:1,(d:1,e:1):3);",
		"((a:1,b:1):5,(c:1,d:1):1,e:1);")

	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.True(t, common[0].Split.Equal(mustSplit(t, "11000")))
	assert.Equal(t, attrib.Of(-3), common[0].Attr)
	assert.Equal(t, a.Edge(0).OriginalID, common[0].OriginalID)

	avg, err := phylo.CommonEdges(a, b, phylo.AveragePolicy(0.5))
	require.NoError(t, err)
	require.Len(t, avg, 1)
	assert.InDelta(t, 3.5, avg[0].Attr.BranchLength(), 1e-12)
}

func TestCommonEdges_CompatibleOnly(t *testing.T) {
	a, b := parsePair(t,
		"((a:1,b:1):1,c:1,d:1,e:1);",
		"((c:1,d:1):2,a:1,b:1,e:1);")

	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	require.NoError(t, err)
	require.Len(t, common, 2)

	assert.Equal(t, "11000", common[0].Split.String(), "tree A's edges come first")
	assert.Equal(t, attrib.Of(1), common[0].Attr)
	assert.Equal(t, "00110", common[1].Split.String())
	assert.Equal(t, attrib.Of(-2), common[1].Attr)
}

func TestCommonEdges_SkipsZeroEdges(t *testing.T) {
	a, b := parsePair(t,
		"((a:1,b:1):0,c:1,d:1,e:1);",
		"((a:1,b:1):0,c:1,d:1,e:1);")

	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	require.NoError(t, err)
	assert.Empty(t, common)
}

func TestCommonEdges_IdenticalTrees(t *testing.T) {
	a, b := parsePair(t,
		"(((a:1,b:2):3,c:1):4,d:1,e:1);",
		"(((a:1,b:2):3,c:1):4,d:1,e:1);")

	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	require.NoError(t, err)
	require.Len(t, common, a.NumEdges(), "each shared split appears exactly once")
	for _, e := range common {
		assert.True(t, e.Attr.IsZero())
	}
}

func TestCommonEdges_LeafMismatch(t *testing.T) {
	a, b := parsePair(t, "((a,b),c,d);", "((a,b),c,x);")

	_, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	assert.ErrorIs(t, err, phylo.ErrLeafMismatch)
}
