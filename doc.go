// Package treespace measures and walks the space of phylogenetic trees.
//
// Trees over the same leaves are points in BHV (Billera–Holmes–Vogtmann)
// tree space: one Euclidean orthant per topology, glued along shared faces.
// The shortest path between two trees may cross several orthants, and
// finding it is a combinatorial search over incompatible splits.
//
// What is in the box?
//
//	split/       — immutable leaf bipartitions and their compatibility
//	attrib/      — vector-valued edge attributes (branch lengths)
//	phylo/       — trees, common edges, Newick parsing and printing
//	flow/        — max-flow / min-cut (Dinic, Edmonds–Karp)
//	vertexcover/ — the min-weight vertex cover oracle built on flow
//	ratio/       — ratios and ratio sequences of a cone path
//	geodesic/    — the geodesic itself and trees along it
//	distance/    — geodesic, Euclidean and Robinson–Foulds metrics, matrices
//	cmd/bhv/     — command-line front end
//
// Quick example:
//
//	((a,b),c,d) ──2── ((a,c),b,d)
//
// Two quartets that disagree on their one internal edge (length 1 each) are
// joined through the star tree, so the geodesic has length 2.
//
//	go install github.com/katalvlaran/treespace/cmd/bhv@latest
//	bhv dist "((a:1,b:1):1,c:1,d:1);" "((a:1,c:1):1,b:1,d:1);"
package treespace
