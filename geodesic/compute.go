package geodesic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/ratio"
	"github.com/katalvlaran/treespace/split"
	"github.com/katalvlaran/treespace/vertexcover"
)

// superLeafSuffix marks the leaf standing in for a contracted clade.
const superLeafSuffix = "*"

// Pair is two trees over the same leaves that share no common edge.
type Pair struct {
	A, B *phylo.Tree
}

// Compute returns the geodesic between a and b.
//
// Steps:
//  1. Check the leaf sequences match.
//  2. Sum the squared pendant-edge differences.
//  3. Cut both trees along common edges into independent pairs.
//  4. Take the common edges of (a, b) with attributes a − b.
//  5. Solve each pair and merge the ratio sequences by time.
func Compute(ctx context.Context, a, b *phylo.Tree, opts ...Option) (*Geodesic, error) {
	o := buildOptions(opts)

	// 1) Leaves
	if !phylo.SameLeaves(a, b) {
		return nil, fmt.Errorf("geodesic: %w", phylo.ErrLeafMismatch)
	}

	// 2) Leaf contribution
	la, lb := a.LeafAttribs(), b.LeafAttribs()
	var leafSq float64
	for i := range la {
		n := attrib.Difference(la[i], lb[i]).Norm()
		leafSq += n * n
	}

	// 3) Decomposition
	pairs, err := SplitOnCommonEdge(a, b)
	if err != nil {
		return nil, err
	}

	// 4) Common edges
	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	if err != nil {
		return nil, err
	}

	// 5) Per-pair cone paths
	var seq ratio.Sequence
	for _, p := range pairs {
		part, err := noCommonEdges(ctx, p.A, p.B, o)
		if err != nil {
			return nil, err
		}
		seq = ratio.Interleave(seq, part)
	}
	o.Logger.Debug("geodesic computed",
		slog.Int("leaves", a.NumLeaves()),
		slog.Int("pairs", len(pairs)),
		slog.Int("common", len(common)),
		slog.Int("ratios", len(seq)))

	return &Geodesic{seq: seq, common: common, leafSq: leafSq}, nil
}

// ComputeNoCommonEdges returns the geodesic between two trees known to share
// no common edge. Its result carries neither common edges nor a leaf
// contribution.
func ComputeNoCommonEdges(ctx context.Context, a, b *phylo.Tree, opts ...Option) (*Geodesic, error) {
	if !phylo.SameLeaves(a, b) {
		return nil, fmt.Errorf("geodesic: %w", phylo.ErrLeafMismatch)
	}
	seq, err := noCommonEdges(ctx, a, b, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Geodesic{seq: seq}, nil
}

// pending is a ratio awaiting the oracle, as edge indices into each tree.
type pending struct {
	a, b []int
}

// noCommonEdges runs the ratio-splitting loop for one pair.
//
// Steps:
//  1. Both trees edgeless: empty sequence.
//  2. Any common edge, or edges on one side only: ErrInvariant.
//  3. A single edge on either side: one ratio holding everything.
//  4. Otherwise start from the ratio (all of a, all of b) and, until the
//     queue is empty, take the front ratio and ask the oracle for a cover.
//     A trivial cover records the ratio; otherwise the two derived ratios
//     go to the front of the queue, the earlier one first.
func noCommonEdges(ctx context.Context, a, b *phylo.Tree, o Options) (ratio.Sequence, error) {
	ea, eb := a.Edges(), b.Edges()

	// 1) Degenerate
	if len(ea) == 0 && len(eb) == 0 {
		return nil, nil
	}

	// 2) Invariants
	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	if err != nil {
		return nil, err
	}
	if len(common) != 0 {
		return nil, fmt.Errorf("%w: pair shares %d common edges: %s and %s",
			ErrInvariant, len(common), a.Newick(true), b.Newick(true))
	}
	if len(ea) == 0 || len(eb) == 0 {
		return nil, fmt.Errorf("%w: pair has %d and %d edges: %s and %s",
			ErrInvariant, len(ea), len(eb), a.Newick(true), b.Newick(true))
	}

	// 3) Too small to split
	if len(ea) == 1 || len(eb) == 1 {
		return ratio.Sequence{ratio.New(ea, eb)}, nil
	}

	// 4) Oracle loop
	g, err := vertexcover.NewGraph(
		vertexcover.IncidenceMatrix(a.Splits(), b.Splits()),
		a.EdgeNorms(), b.EdgeNorms(), o.oracle())
	if err != nil {
		return nil, err
	}
	queue := []pending{{a: indices(len(ea)), b: indices(len(eb))}}
	var seq ratio.Sequence
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		if len(r.a) <= 1 || len(r.b) <= 1 {
			seq = append(seq, ratio.New(pick(ea, r.a), pick(eb, r.b)))
			continue
		}
		c, err := g.Cover(ctx, r.a, r.b)
		if err != nil {
			if errors.Is(err, vertexcover.ErrEmptySide) {
				return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
			}

			return nil, err
		}
		if c.Trivial() {
			o.Logger.Debug("irreducible ratio",
				slog.Int("e", len(r.a)),
				slog.Int("f", len(r.b)),
				slog.Float64("cover", c.Weight))
			seq = append(seq, ratio.New(pick(ea, r.a), pick(eb, r.b)))
			continue
		}
		o.Logger.Debug("ratio split",
			slog.Int("e", len(r.a)),
			slog.Int("f", len(r.b)),
			slog.Float64("cover", c.Weight))
		r1 := pending{a: c.AIn, b: c.BOut}
		r2 := pending{a: c.AOut, b: c.BIn}
		queue = append([]pending{r1, r2}, queue...)
	}

	return seq, nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func pick(edges []phylo.Edge, idx []int) []phylo.Edge {
	out := make([]phylo.Edge, len(idx))
	for k, i := range idx {
		out[k] = edges[i]
	}

	return out
}

// SplitOnCommonEdge cuts a and b along their common edges into independent
// pairs with strictly smaller leaf sets and no common edges.
//
// Steps:
//  1. If either tree has no edges, nothing remains to pair: return none.
//  2. If the trees share no common edge, return (a, b) itself.
//  3. Otherwise cut on the first common edge c: the inside pair keeps the
//     edges strictly inside c over c's leaves; the outside pair keeps the
//     remaining leaves plus one super-leaf for all of c, placed at c's
//     first leaf. Edges emptied by the cut are dropped.
//  4. Recurse on both pairs and concatenate, inside first.
func SplitOnCommonEdge(a, b *phylo.Tree) ([]Pair, error) {
	if !phylo.SameLeaves(a, b) {
		return nil, fmt.Errorf("geodesic: %w", phylo.ErrLeafMismatch)
	}

	// 1) Nothing to pair
	if a.NumEdges() == 0 || b.NumEdges() == 0 {
		return nil, nil
	}

	// 2) Already free of common edges
	common, err := phylo.CommonEdges(a, b, phylo.DifferencePolicy)
	if err != nil {
		return nil, err
	}
	if len(common) == 0 {
		return []Pair{{A: a, B: b}}, nil
	}

	// 3) Cut on the first common edge
	c := common[0].Split
	inA, outA, err := cut(a, c)
	if err != nil {
		return nil, err
	}
	inB, outB, err := cut(b, c)
	if err != nil {
		return nil, err
	}

	// 4) Recurse
	inside, err := SplitOnCommonEdge(inA, inB)
	if err != nil {
		return nil, err
	}
	outside, err := SplitOnCommonEdge(outA, outB)
	if err != nil {
		return nil, err
	}

	return append(inside, outside...), nil
}

// cut contracts t on split c into the tree over c's leaves and the tree
// over the other leaves plus a super-leaf. Provenance is preserved.
func cut(t *phylo.Tree, c split.Split) (inside, outside *phylo.Tree, err error) {
	labels := t.Leaves()
	var inLabels, outLabels []string
	inPos := make(map[int]int)  // root leaf → inside leaf
	outPos := make(map[int]int) // root leaf → outside leaf
	super := -1
	for i, l := range labels {
		if c.Has(i) {
			inPos[i] = len(inLabels)
			inLabels = append(inLabels, l)
			if super < 0 {
				super = len(outLabels)
				outLabels = append(outLabels, l+superLeafSuffix)
			}
			continue
		}
		outPos[i] = len(outLabels)
		outLabels = append(outLabels, l)
	}

	var inEdges, outEdges []phylo.Edge
	for _, e := range t.Edges() {
		if c.ProperlyContains(e.Split) {
			inEdges = append(inEdges, relabel(e, len(inLabels), e.Split.Leaves(), inPos, -1))
		}
		rest := e.Split.AndNot(c).Leaves()
		extra := -1
		if e.Split.ProperlyContains(c) {
			extra = super
		}
		if len(rest) > 0 || extra >= 0 {
			outEdges = append(outEdges, relabel(e, len(outLabels), rest, outPos, extra))
		}
	}

	if inside, err = phylo.NewTree(inEdges, inLabels, nil); err != nil {
		return nil, nil, err
	}
	if outside, err = phylo.NewTree(outEdges, outLabels, nil); err != nil {
		return nil, nil, err
	}

	return inside, outside, nil
}

// relabel maps leaves through pos into an n-leaf space, adding extra if ≥ 0.
func relabel(e phylo.Edge, n int, leaves []int, pos map[int]int, extra int) phylo.Edge {
	mapped := make([]int, 0, len(leaves)+1)
	for _, l := range leaves {
		mapped = append(mapped, pos[l])
	}
	if extra >= 0 {
		mapped = append(mapped, extra)
	}

	return phylo.Edge{
		Split:      split.New(n, mapped...),
		Attr:       e.Attr.Clone(),
		Original:   e.Original,
		OriginalID: e.OriginalID,
	}
}
