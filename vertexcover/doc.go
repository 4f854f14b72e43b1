// Package vertexcover answers the one question the geodesic search asks of a
// ratio: can it be split into two ratios with strictly increasing time?
//
// The edges of the two trees form a bipartite graph: A-vertices are the
// edges of the first tree, B-vertices the edges of the second, and an arc
// joins a and b when their splits are incompatible. For a ratio (E, F) the
// oracle finds a minimum-weight vertex cover of the subgraph induced by E
// and F, where each vertex weighs its squared norm divided by the sum of
// squared norms on its side (so both sides weigh 1 in total).
//
// If the cover weighs less than 1 the ratio splits into
//
//	r1 = (covered E, uncovered F)
//	r2 = (uncovered E, covered F)
//
// with r1 strictly earlier than r2. Otherwise the ratio is irreducible and
// the oracle reports the trivial cover "all of E".
//
// The minimum cover is read off a minimum cut of the network
//
//	s → a  capacity w(a)
//	a → b  capacity +Inf   for every incompatible pair
//	b → t  capacity w(b)
//
// computed with package flow: the cover is every A-vertex cut away from s
// together with every B-vertex still reachable from s.
//
// Errors:
//
//	ErrEmptySide – a query with no A or no B indices.
//	ErrDimension – incidence matrix and weight vectors disagree in size.
//	ErrIndex     – a query index outside the graph.
package vertexcover
