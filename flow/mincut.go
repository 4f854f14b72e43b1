package flow

import (
	"context"
	"fmt"
)

// MaxFlow runs the selected algorithm.
func MaxFlow(ctx context.Context, n *Network, source, sink string, algo Algorithm, opts Options) (float64, *Residual, error) {
	switch algo {
	case AlgoDinic:
		return Dinic(ctx, n, source, sink, opts)
	case AlgoEdmondsKarp:
		return EdmondsKarp(ctx, n, source, sink, opts)
	default:
		return 0, nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// MinCut returns the value of a minimum source–sink cut together with its
// source side: the vertices still reachable from source in the residual
// network after a maximum flow.
func MinCut(ctx context.Context, n *Network, source, sink string, algo Algorithm, opts Options) (float64, map[string]bool, error) {
	value, residual, err := MaxFlow(ctx, n, source, sink, algo, opts)
	if err != nil {
		return 0, nil, err
	}

	return value, residual.Reachable(source), nil
}
