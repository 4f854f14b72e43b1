package phylo

import (
	"github.com/katalvlaran/treespace/attrib"
)

// Combine merges the attribute an edge has in tree A with the one its split
// has in tree B. A side on which the split is absent contributes nil, which
// attribute arithmetic treats as zero.
type Combine func(a, b attrib.Attribute) attrib.Attribute

// DifferencePolicy combines common edges for distance computations: the
// result is a − b, so its norm is the edge's Euclidean contribution.
func DifferencePolicy(a, b attrib.Attribute) attrib.Attribute {
	return attrib.Difference(a, b)
}

// AveragePolicy combines common edges for interpolation: the result is the
// attribute at position along the straight segment from a to b.
func AveragePolicy(position float64) Combine {
	return func(a, b attrib.Attribute) attrib.Attribute {
		return attrib.WeightedAverage(a, b, position)
	}
}

// CommonEdges returns the edges two trees can share on a geodesic: splits
// present in both, and splits of either tree compatible with every split of
// the other. Each result carries combine(attrA, attrB).
//
// Order of emission:
//  1. A's qualifying non-zero edges, in A's edge order.
//  2. B's non-zero edges whose split is absent from A (or zero there) and is
//     compatible with every split of A, in B's edge order.
//
// Exact matches keep A's OriginalID; compatible-only edges keep their own.
// It returns ErrLeafMismatch if the leaf sequences differ.
func CommonEdges(a, b *Tree, combine Combine) ([]Edge, error) {
	if !SameLeaves(a, b) {
		return nil, ErrLeafMismatch
	}

	aSplits := a.Splits()
	bSplits := b.Splits()
	emitted := make(map[string]struct{})

	var common []Edge
	for _, e := range a.edges {
		if e.IsZero() {
			continue
		}
		if other, ok := b.AttribOfSplit(e.Split); ok {
			common = append(common, Edge{
				Split:      e.Split,
				Attr:       combine(e.Attr, other),
				Original:   e.Original,
				OriginalID: e.OriginalID,
			})
			emitted[e.Split.Key()] = struct{}{}
			continue
		}
		if e.Split.CompatibleWithAll(bSplits) {
			common = append(common, Edge{
				Split:      e.Split,
				Attr:       combine(e.Attr, nil),
				Original:   e.Original,
				OriginalID: e.OriginalID,
			})
			emitted[e.Split.Key()] = struct{}{}
		}
	}

	for _, e := range b.edges {
		if e.IsZero() {
			continue
		}
		if _, done := emitted[e.Split.Key()]; done {
			continue
		}
		if !e.Split.CompatibleWithAll(aSplits) {
			continue
		}
		own, _ := a.AttribOfSplit(e.Split)
		common = append(common, Edge{
			Split:      e.Split,
			Attr:       combine(own, e.Attr),
			Original:   e.Original,
			OriginalID: e.OriginalID,
		})
	}

	return common, nil
}
