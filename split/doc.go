// Package split implements leaf bipartitions ("splits") of a phylogenetic tree.
//
// A Split is a fixed-width set of leaf indices: the leaves lying on one side
// of an internal edge. Splits are immutable values; every operation that looks
// like a mutation (With, AndNot, Complement, ...) returns a fresh Split and
// never aliases the receiver's storage, so splits can be shared freely between
// trees, ratios and geodesics.
//
// Relations:
//
//	s.Contains(o)         – o ⊆ s
//	s.ProperlyContains(o) – o ⊂ s
//	s.CompatibleWith(o)   – o ⊆ s, s ⊆ o, or s ∩ o = ∅
//	s.Crosses(o)          – !s.CompatibleWith(o)
//
// Compatibility assumes the canonical orientation used by package phylo:
// unrooted splits never contain the last leaf, so the fourth quadrant of the
// four-point condition is always inhabited and the three tests above are
// exhaustive.
//
// Complexity: every operation is O(N/64) in the leaf count N.
package split

import "errors"

// Sentinel errors for split construction.
var (
	// ErrLeafIndex indicates a leaf index outside [0, N).
	ErrLeafIndex = errors.New("split: leaf index out of range")

	// ErrBadBitString indicates a bit string containing characters other than '0' and '1'.
	ErrBadBitString = errors.New("split: bit string must contain only '0' and '1'")
)
