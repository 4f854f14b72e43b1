package geodesic

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/phylo"
)

// TreeAt returns the tree at position ∈ [0,1] along the geodesic from a to b.
//
// Steps:
//  1. Reject positions outside [0,1] before any work.
//  2. Take the common edges averaged at position and remove their splits
//     from copies of a and b.
//  3. Compute the geodesic between the reduced copies.
//  4. Seed the result with the common edges and the averaged leaves.
//  5. Locate position among the ratio times: lower is the last ratio
//     strictly before it, higher the first strictly after. A ratio whose
//     time equals position lies on an orthant boundary and adds nothing.
//  6. Ratios up to lower add their F edges, scaled by (p‖F‖ − (1−p)‖E‖)/‖F‖.
//  7. Ratios from higher on add their E edges, scaled by ((1−p)‖E‖ − p‖F‖)/‖E‖.
func TreeAt(ctx context.Context, a, b *phylo.Tree, position float64, opts ...Option) (*phylo.Tree, error) {
	// 1) Range
	if math.IsNaN(position) || position < 0 || position > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrPositionOutOfRange, position)
	}
	if !phylo.SameLeaves(a, b) {
		return nil, fmt.Errorf("geodesic: %w", phylo.ErrLeafMismatch)
	}

	// 2) Common edges at position
	common, err := phylo.CommonEdges(a, b, phylo.AveragePolicy(position))
	if err != nil {
		return nil, err
	}
	ra, rb := a.Clone(), b.Clone()
	for _, e := range common {
		ra.RemoveSplit(e.Split)
		rb.RemoveSplit(e.Split)
	}

	// 3) Geodesic of the remainder
	geo, err := Compute(ctx, ra, rb, opts...)
	if err != nil {
		return nil, err
	}

	// 4) Seed
	la, lb := a.LeafAttribs(), b.LeafAttribs()
	leaves := make([]attrib.Attribute, len(la))
	for i := range la {
		leaves[i] = attrib.WeightedAverage(la[i], lb[i], position)
	}
	tree, err := phylo.NewTree(common, a.Leaves(), leaves)
	if err != nil {
		return nil, err
	}
	seq := geo.seq
	if len(seq) == 0 {
		return tree, nil
	}

	// 5) Orthant of position
	lower, higher := -1, len(seq)
	for i, r := range seq {
		t := r.Time()
		if t < position {
			lower = i
		}
		if t > position && higher == len(seq) {
			higher = i
		}
	}
	buildOptions(opts).Logger.Debug("tree at position",
		slog.Float64("position", position),
		slog.Int("ratios", len(seq)),
		slog.Int("lower", lower),
		slog.Int("higher", higher))

	// 6) Edges already added
	for i := 0; i <= lower; i++ {
		r := seq[i]
		if r.FLength() == 0 {
			continue
		}
		k := (position*r.FLength() - (1-position)*r.ELength()) / r.FLength()
		if err := addScaled(tree, r.FEdges(), k); err != nil {
			return nil, err
		}
	}

	// 7) Edges not yet dropped
	for i := higher; i < len(seq); i++ {
		r := seq[i]
		if r.ELength() == 0 {
			continue
		}
		k := ((1-position)*r.ELength() - position*r.FLength()) / r.ELength()
		if err := addScaled(tree, r.EEdges(), k); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// addScaled adds each non-zero edge with its attribute scaled by k.
// Reduced trees are never contracted here, so edge splits are already in
// the tree's leaf space.
func addScaled(t *phylo.Tree, edges []phylo.Edge, k float64) error {
	for _, e := range edges {
		if e.IsZero() {
			continue
		}
		if err := t.AddEdge(phylo.Edge{
			Split:      e.Split,
			Attr:       e.Attr.Scale(k),
			Original:   e.Original,
			OriginalID: e.OriginalID,
		}); err != nil {
			return err
		}
	}

	return nil
}
