// Package ratio models the segments of a cone path through tree space.
//
// A Ratio pairs the edges E that leave tree A with the edges F that enter
// on the way to tree B at one orthant crossing. Its combinatorial time
//
//	t = ‖E‖ / (‖E‖ + ‖F‖)
//
// is the fraction of the path at which the crossing happens. A Sequence of
// ratios is a valid cone path only when times never decrease; the minimal
// such path is found by repeatedly merging adjacent out-of-order ratios.
//
// Ratios are values: constructors copy their inputs and accessors return
// copies, so a Sequence can be cloned by copying its slice.
package ratio
