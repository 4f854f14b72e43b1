package flow

import (
	"context"
	"log/slog"
	"math"
)

// Dinic computes the maximum flow from source to sink in n using Dinic's
// algorithm (level graph + blocking flows). n itself is not modified.
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : remaining capacities, from which a min cut can be read
//   - err      : ErrSourceNotFound, ErrSinkNotFound, ErrSourceIsSink,
//     or the context's error on cancellation
//
// Steps:
//  1. Normalize options and validate endpoints.
//  2. Copy the arcs into a fresh residual network.
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from the source to assign levels over arcs with capacity > Epsilon.
//     c. If the sink has no level, stop.
//     d. Push blocking flow by DFS along level-increasing arcs, optionally
//     breaking out every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E).
//	Memory: O(V + E).
func Dinic(ctx context.Context, n *Network, source, sink string, opts Options) (maxFlow float64, residual *Residual, err error) {
	// 1) Normalize options and validate
	opts.normalize()
	s, t, err := n.endpoints(source, sink)
	if err != nil {
		return 0, nil, err
	}

	// 2) Residual copy
	residual = newResidual(n, opts.Epsilon)
	d := &dinicState{
		adj:   n.adj,
		arcs:  residual.arcs,
		eps:   opts.Epsilon,
		sink:  t,
		level: make([]int, len(n.names)),
		iter:  make([]int, len(n.names)),
	}

	// 3) Phases
	augmentCount := 0
	for {
		// 3a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// 3b–c) Level graph
		if !d.buildLevels(s) {
			break
		}

		// 3d) Blocking flow
		for i := range d.iter {
			d.iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := d.push(s, math.Inf(1))
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("dinic augment",
				slog.Float64("pushed", pushed),
				slog.Float64("total", maxFlow))
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

type dinicState struct {
	adj   [][]int
	arcs  []arc
	eps   float64
	sink  int
	level []int
	iter  []int
}

// buildLevels assigns BFS levels from s and reports whether the sink got one.
func (d *dinicState) buildLevels(s int) bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range d.adj[u] {
			e := d.arcs[a]
			if e.cap > d.eps && d.level[e.to] < 0 {
				d.level[e.to] = d.level[u] + 1
				queue = append(queue, e.to)
			}
		}
	}

	return d.level[d.sink] >= 0
}

// push sends up to available units from u to the sink along the level graph
// and returns the amount actually sent. iter[u] remembers the first arc of u
// not yet known to be blocked.
func (d *dinicState) push(u int, available float64) float64 {
	if u == d.sink {
		return available
	}
	for ; d.iter[u] < len(d.adj[u]); d.iter[u]++ {
		a := d.adj[u][d.iter[u]]
		e := d.arcs[a]
		if e.cap <= d.eps || d.level[e.to] != d.level[u]+1 {
			continue
		}
		pushed := d.push(e.to, math.Min(available, e.cap))
		if pushed > 0 {
			d.arcs[a].cap -= pushed
			d.arcs[e.rev].cap += pushed

			return pushed
		}
	}

	return 0
}
