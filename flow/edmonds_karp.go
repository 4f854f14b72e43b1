package flow

import (
	"context"
	"log/slog"
	"math"
)

// EdmondsKarp computes the maximum flow from source to sink in n using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths). n itself is
// not modified. Results and errors match Dinic.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(ctx context.Context, n *Network, source, sink string, opts Options) (maxFlow float64, residual *Residual, err error) {
	// 1) Normalize options and validate
	opts.normalize()
	s, t, err := n.endpoints(source, sink)
	if err != nil {
		return 0, nil, err
	}
	residual = newResidual(n, opts.Epsilon)

	// 2) Augment along BFS paths until none remain
	via := make([]int, len(n.names)) // arc used to enter each vertex
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		bottle, ok := shortestAugmentingPath(n.adj, residual.arcs, s, t, opts.Epsilon, via)
		if !ok || bottle <= opts.Epsilon {
			break
		}

		// 3) Augment along the path, walking back from the sink
		for v := t; v != s; {
			a := via[v]
			residual.arcs[a].cap -= bottle
			rev := residual.arcs[a].rev
			residual.arcs[rev].cap += bottle
			v = residual.arcs[rev].to
		}
		maxFlow += bottle
		opts.Logger.Debug("edmonds-karp augment",
			slog.Float64("pushed", bottle),
			slog.Float64("total", maxFlow))
	}

	return maxFlow, residual, nil
}

// shortestAugmentingPath runs BFS from s over arcs with capacity > eps,
// recording in via the arc that first reached each vertex. It returns the
// bottleneck of the path to t and whether t was reached.
func shortestAugmentingPath(adj [][]int, arcs []arc, s, t int, eps float64, via []int) (float64, bool) {
	for i := range via {
		via[i] = -1
	}
	bottleneck := make([]float64, len(via))
	bottleneck[s] = math.Inf(1)
	visited := make([]bool, len(via))
	visited[s] = true

	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range adj[u] {
			e := arcs[a]
			if visited[e.to] || e.cap <= eps {
				continue
			}
			visited[e.to] = true
			via[e.to] = a
			bottleneck[e.to] = math.Min(bottleneck[u], e.cap)
			if e.to == t {
				return bottleneck[t], true
			}
			queue = append(queue, e.to)
		}
	}

	return 0, false
}
