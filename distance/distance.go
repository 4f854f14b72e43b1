package distance

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/geodesic"
	"github.com/katalvlaran/treespace/phylo"
)

// Geodesic returns the BHV geodesic distance between a and b.
func Geodesic(ctx context.Context, a, b *phylo.Tree, opts ...Option) (float64, error) {
	o := buildOptions(opts)
	a, b, err := prepare(a, b, o)
	if err != nil {
		return 0, err
	}
	g, err := geodesic.Compute(ctx, a, b, o.Geodesic...)
	if err != nil {
		return 0, err
	}

	return g.Distance(), nil
}

// PointOnGeodesic returns the tree at position ∈ [0,1] along the geodesic
// from a to b. Positions outside the range fail with ErrPositionOutOfRange.
//
// With Normalized the geodesic joins the normalised copies of a and b, and
// the returned tree stays in that scaled space: its attributes are those of
// the original-scale point divided by the sum of the two distances from the
// origin.
func PointOnGeodesic(ctx context.Context, a, b *phylo.Tree, position float64, opts ...Option) (*phylo.Tree, error) {
	o := buildOptions(opts)
	a, b, err := prepare(a, b, o)
	if err != nil {
		return nil, err
	}

	return geodesic.TreeAt(ctx, a, b, position, o.Geodesic...)
}

// Euclidean returns the distance between a and b in the vector space with
// one axis per split of either tree plus one per leaf. A split missing from
// a tree has a zero attribute there.
func Euclidean(a, b *phylo.Tree, opts ...Option) (float64, error) {
	var diffs []float64
	err := eachDifference(a, b, buildOptions(opts), func(d float64) {
		diffs = append(diffs, d)
	})
	if err != nil {
		return 0, err
	}

	return floats.Norm(diffs, 2), nil
}

// WeightedRobinsonFoulds returns Σ‖a_s − b_s‖ over every split and leaf
// of either tree.
func WeightedRobinsonFoulds(a, b *phylo.Tree, opts ...Option) (float64, error) {
	var sum float64
	err := eachDifference(a, b, buildOptions(opts), func(d float64) {
		sum += d
	})
	if err != nil {
		return 0, err
	}

	return sum, nil
}

// RobinsonFoulds returns the number of non-zero splits present in exactly
// one of a and b.
func RobinsonFoulds(a, b *phylo.Tree) (int, error) {
	onlyA, err := a.EdgesNotInCommonWith(b)
	if err != nil {
		return 0, err
	}
	onlyB, err := b.EdgesNotInCommonWith(a)
	if err != nil {
		return 0, err
	}

	return len(onlyA) + len(onlyB), nil
}

// Compute evaluates metric on (a, b).
func Compute(ctx context.Context, metric Metric, a, b *phylo.Tree, opts ...Option) (float64, error) {
	switch metric {
	case MetricGeodesic:
		return Geodesic(ctx, a, b, opts...)
	case MetricEuclidean:
		return Euclidean(a, b, opts...)
	case MetricRobinsonFoulds:
		n, err := RobinsonFoulds(a, b)
		return float64(n), err
	case MetricWeightedRobinsonFoulds:
		return WeightedRobinsonFoulds(a, b, opts...)
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
}

// prepare checks the leaves and, when asked to, returns normalised copies.
func prepare(a, b *phylo.Tree, o Options) (*phylo.Tree, *phylo.Tree, error) {
	if !phylo.SameLeaves(a, b) {
		return nil, nil, fmt.Errorf("distance: %w", ErrLeafMismatch)
	}
	if !o.Normalize {
		return a, b, nil
	}
	a, b = a.Clone(), b.Clone()
	a.NormalizePair(b)

	return a, b, nil
}

// eachDifference calls fn with ‖a_s − b_s‖ for every split of either tree,
// then with ‖a_i − b_i‖ for every leaf.
func eachDifference(a, b *phylo.Tree, o Options, fn func(float64)) error {
	a, b, err := prepare(a, b, o)
	if err != nil {
		return err
	}
	for _, e := range a.Edges() {
		other, _ := b.AttribOfSplit(e.Split)
		fn(attrib.Difference(e.Attr, other).Norm())
	}
	for _, e := range b.Edges() {
		if a.HasSplit(e.Split) {
			continue
		}
		fn(e.Length())
	}
	la, lb := a.LeafAttribs(), b.LeafAttribs()
	for i := range la {
		fn(attrib.Difference(la[i], lb[i]).Norm())
	}

	return nil
}
