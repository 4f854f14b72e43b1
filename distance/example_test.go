package distance_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treespace/distance"
	"github.com/katalvlaran/treespace/phylo"
)

// ExampleCompute compares two quartets that disagree on their internal edge
// under every metric.
func ExampleCompute() {
	a, _ := phylo.Parse("((a:1,b:1):1,c:1,d:1);", false)
	b, _ := phylo.Parse("((a:1,c:1):1,b:1,d:1);", false)

	for _, m := range []distance.Metric{
		distance.MetricGeodesic,
		distance.MetricEuclidean,
		distance.MetricRobinsonFoulds,
		distance.MetricWeightedRobinsonFoulds,
	} {
		d, _ := distance.Compute(context.Background(), m, a, b)
		fmt.Printf("%s %.4f\n", m, d)
	}
	// Output:
	// geodesic 2.0000
	// euclidean 1.4142
	// rf 2.0000
	// wrf 2.0000
}
