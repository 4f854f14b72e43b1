// Package phylo defines weighted phylogenetic trees as points of BHV tree space.
//
// A Tree is a duplicate-free set of internal edges (each a split.Split with an
// attrib.Attribute) over a fixed, ordered sequence of leaf labels, plus one
// pendant-edge attribute per leaf. Two trees are comparable only when their
// leaf-label sequences are identical, element by element.
//
// Every Edge carries provenance: the split it had in the tree it was parsed
// from (Original) and its position there (OriginalID). Package geodesic
// contracts leaf sets while decomposing a problem; provenance survives every
// contraction so results can always be mapped back.
//
// Newick input:
//
//	t, err := phylo.Parse("((a:1,b:1):0.5,c:1,d:2);", false)
//
// Leaf labels are sorted lexicographically to build the leaf→index map. For
// unrooted trees any split containing the last leaf is complemented, so the
// last leaf acts as the root; two edges that collapse onto the same split are
// merged by summing their attributes.
//
// Errors:
//
//	ErrLeafMismatch   – two trees do not share an identical ordered leaf set.
//	ErrFormat         – malformed Newick text (see FormatError).
//	ErrDuplicateSplit – NewTree received two edges with the same split.
//	ErrSplitWidth     – an edge split is over a different number of leaves.
//	ErrLeafAttribs    – leaf attribute count differs from the leaf count.
package phylo

import "errors"

// Sentinel errors for tree construction and comparison.
var (
	// ErrLeafMismatch indicates that two trees have different leaf-label sequences.
	ErrLeafMismatch = errors.New("phylo: trees have mismatched leaves")

	// ErrFormat indicates malformed tree text.
	ErrFormat = errors.New("phylo: malformed newick")

	// ErrDuplicateSplit indicates two edges of one tree carry the same split.
	ErrDuplicateSplit = errors.New("phylo: duplicate split")

	// ErrSplitWidth indicates a split whose leaf space differs from the tree's.
	ErrSplitWidth = errors.New("phylo: split width differs from leaf count")

	// ErrLeafAttribs indicates a leaf attribute slice of the wrong length.
	ErrLeafAttribs = errors.New("phylo: leaf attribute count differs from leaf count")
)
