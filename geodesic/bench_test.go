package geodesic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/treespace/flow"
	"github.com/katalvlaran/treespace/geodesic"
)

// BenchmarkCompute runs the twelve-leaf pair under both flow solvers.
func BenchmarkCompute(b *testing.B) {
	t1, t2 := parse(b, big1), parse(b, big2)
	ctx := context.Background()
	for _, algo := range []flow.Algorithm{flow.AlgoDinic, flow.AlgoEdmondsKarp} {
		b.Run(algo.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := geodesic.Compute(ctx, t1, t2, geodesic.WithFlowAlgorithm(algo)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTreeAt interpolates the same pair at its midpoint.
func BenchmarkTreeAt(b *testing.B) {
	t1, t2 := parse(b, big1), parse(b, big2)
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := geodesic.TreeAt(ctx, t1, t2, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
