package geodesic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/ratio"
)

// Geodesic is the shortest path between two trees: a ratio sequence, the
// common edges, and the squared leaf contribution. It is built once per
// tree pair; the setters exist for incremental construction.
type Geodesic struct {
	seq    ratio.Sequence
	common []phylo.Edge
	leafSq float64
}

// New returns a geodesic with the given parts. Inputs are copied.
func New(seq ratio.Sequence, common []phylo.Edge, leafContributionSquared float64) *Geodesic {
	return &Geodesic{
		seq:    seq.Clone(),
		common: cloneEdges(common),
		leafSq: leafContributionSquared,
	}
}

// Sequence returns the ratio sequence.
func (g *Geodesic) Sequence() ratio.Sequence { return g.seq.Clone() }

// SetSequence replaces the ratio sequence.
func (g *Geodesic) SetSequence(s ratio.Sequence) { g.seq = s.Clone() }

// CommonEdges returns the common edges.
func (g *Geodesic) CommonEdges() []phylo.Edge { return cloneEdges(g.common) }

// SetCommonEdges replaces the common edges.
func (g *Geodesic) SetCommonEdges(edges []phylo.Edge) { g.common = cloneEdges(edges) }

// AddCommonEdge appends one common edge.
func (g *Geodesic) AddCommonEdge(e phylo.Edge) { g.common = append(g.common, e.Clone()) }

// NumCommonEdges returns the number of common edges.
func (g *Geodesic) NumCommonEdges() int { return len(g.common) }

// LeafContributionSquared returns Σ‖leafA_i − leafB_i‖².
func (g *Geodesic) LeafContributionSquared() float64 { return g.leafSq }

// SetLeafContributionSquared replaces the leaf contribution.
func (g *Geodesic) SetLeafContributionSquared(v float64) { g.leafSq = v }

// Distance returns the geodesic length: the minimal non-descending cone
// path, the common edges and the leaves, combined in quadrature.
func (g *Geodesic) Distance() float64 {
	parts := []float64{g.seq.NonDescendingMinDist().Distance(), math.Sqrt(g.leafSq)}
	for _, e := range g.common {
		parts = append(parts, e.Length())
	}

	return floats.Norm(parts, 2)
}

// NumTopologies returns the number of orthants the path passes through,
// counting both end points.
func (g *Geodesic) NumTopologies() int {
	return len(g.seq.AscendingMinDist()) + 1
}

// Reverse returns the geodesic traversed from the second tree to the first.
func (g *Geodesic) Reverse() *Geodesic {
	return &Geodesic{seq: g.seq.Reverse(), common: cloneEdges(g.common), leafSq: g.leafSq}
}

// Clone returns an independent copy of g.
func (g *Geodesic) Clone() *Geodesic {
	return New(g.seq, g.common, g.leafSq)
}

// String renders the distance followed by the canonical ratio sequence.
func (g *Geodesic) String() string {
	return fmt.Sprintf("%g; %s", g.Distance(), g.seq.NonDescendingMinDist())
}

func cloneEdges(edges []phylo.Edge) []phylo.Edge {
	if edges == nil {
		return nil
	}
	out := make([]phylo.Edge, len(edges))
	for i, e := range edges {
		out[i] = e.Clone()
	}

	return out
}
