// Package geodesic computes shortest paths between two phylogenetic trees in
// BHV tree space and the trees lying along them.
//
// A geodesic has three independent parts:
//
//   - common edges: splits shared exactly by both trees, or present in one and
//     compatible with every split of the other. Each contributes its length
//     difference as an ordinary Euclidean coordinate.
//   - leaf contribution: the squared differences of pendant edge lengths.
//   - a ratio sequence: the cone path that trades the remaining edges of the
//     first tree for those of the second, one orthant crossing per ratio.
//
// Compute finds the ratio sequence by first cutting both trees along their
// common edges (SplitOnCommonEdge) into independent subtree pairs with no
// common edges, then solving each pair with ComputeNoCommonEdges. The latter
// repeatedly asks the vertex-cover oracle (package vertexcover) whether a
// ratio can be split into two earlier/later ratios, until every ratio is
// irreducible. Per-pair sequences are merged by time.
//
// TreeAt walks the same path to a position in [0,1]: position 0 is the
// first tree, position 1 the second.
//
// Example:
//
//	a, _ := phylo.Parse("((a:1,b:1):1,c:1,d:1);", false)
//	b, _ := phylo.Parse("((a:1,c:1):1,b:1,d:1);", false)
//	g, _ := geodesic.Compute(ctx, a, b)
//	g.Distance() // 2
//
// Errors:
//
//	phylo.ErrLeafMismatch  – the trees have different leaf sequences.
//	ErrPositionOutOfRange  – TreeAt position outside [0,1].
//	ErrInvariant           – a subtree pair that should be free of common edges
//	                         is not, or has edges on one side only.
package geodesic
