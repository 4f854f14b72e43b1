// Package flow computes maximum flows and minimum cuts on small directed
// networks with real-valued capacities.
//
// It is the engine behind the vertex-cover oracle of package vertexcover,
// which needs exact min cuts on bipartite networks carrying +Inf middle arcs.
// Two algorithms are provided:
//
//   - Dinic
//
//   - Method: BFS level graph + blocking flow via DFS.
//
//   - Time:   O(V²·E).
//
//   - Default; fastest on the dense bipartite networks built by the oracle.
//
//   - Edmonds–Karp
//
//   - Method: BFS for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V·E²).
//
//   - Kept as an independent cross-check.
//
// # Network model
//
// Vertices are strings, added explicitly or implicitly by AddArc. Parallel
// arcs are summed. Arc u→v and arc v→u share one residual pair, so the
// residual network never has more than two arcs per unordered vertex pair.
// Capacities may be +Inf; negative capacities are rejected with EdgeError.
//
// Iteration follows insertion order everywhere, so results (including which
// of several equal-valued min cuts is found) are deterministic.
//
// # Options
//
//	type Options struct {
//	    Epsilon              float64      // residual capacities ≤ Epsilon are saturated
//	    LevelRebuildInterval int          // Dinic only: rebuild level graph every N pushes
//	    Logger               *slog.Logger // Debug-level augmentation trace
//	}
//
// DefaultOptions returns Epsilon 1e-9, no forced rebuilds, and a discarding
// logger.
//
// # Errors
//
//	ErrSourceNotFound   – source vertex missing.
//	ErrSinkNotFound     – sink vertex missing.
//	ErrSourceIsSink     – source and sink are the same vertex.
//	ErrUnknownAlgorithm – Algorithm value or name not recognised.
//	EdgeError           – negative capacity passed to AddArc.
//
// # Example
//
//	n := flow.NewNetwork()
//	_ = n.AddArc("s", "a", 3)
//	_ = n.AddArc("a", "t", 2)
//	value, side, _ := flow.MinCut(ctx, n, "s", "t", flow.AlgoDinic, flow.DefaultOptions())
//	// value == 2, side == {"s", "a"}
package flow
