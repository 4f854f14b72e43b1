// Package distance is the entry point for comparing phylogenetic trees.
//
// It exposes the BHV geodesic distance and the tree at any position along
// the geodesic, alongside the classic comparison measures that work on the
// same tree representation:
//
//	Geodesic               – length of the shortest path in tree space.
//	PointOnGeodesic        – the tree at position ∈ [0,1] along that path.
//	Euclidean              – straight-line distance treating every split of
//	                         either tree as its own axis.
//	RobinsonFoulds         – number of splits present in exactly one tree.
//	WeightedRobinsonFoulds – sum of attribute differences over all splits
//	                         and leaves.
//
// Matrix computes any metric over every pair of a tree collection, spreading
// the work over a bounded number of goroutines.
//
// All functions require the two trees to share an identical ordered leaf
// sequence and return ErrLeafMismatch otherwise. The Normalized option
// scales each pair by the sum of their distances from the origin before
// comparing; inputs are never modified. PointOnGeodesic under Normalized
// returns a tree in the same scaled space.
package distance
