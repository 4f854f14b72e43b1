package vertexcover

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/treespace/flow"
	"github.com/katalvlaran/treespace/split"
)

const (
	source = "s"
	sink   = "t"
)

// IncidenceMatrix returns m with m[i][j] true iff a[i] and b[j] are incompatible.
func IncidenceMatrix(a, b []split.Split) [][]bool {
	m := make([][]bool, len(a))
	for i := range a {
		m[i] = make([]bool, len(b))
		for j := range b {
			m[i][j] = a[i].Crosses(b[j])
		}
	}

	return m
}

// Graph is the bipartite incompatibility graph of two edge lists together
// with the vertex norms. It is read-only after construction and may be
// queried repeatedly.
type Graph struct {
	incident [][]bool
	aNorm    []float64
	bNorm    []float64
	opts     Options
}

// NewGraph validates and stores the incidence matrix and per-vertex norms.
func NewGraph(incidence [][]bool, aNorms, bNorms []float64, opts Options) (*Graph, error) {
	if len(incidence) != len(aNorms) {
		return nil, fmt.Errorf("%w: %d rows, %d A-weights", ErrDimension, len(incidence), len(aNorms))
	}
	for i, row := range incidence {
		if len(row) != len(bNorms) {
			return nil, fmt.Errorf("%w: row %d has %d columns, %d B-weights", ErrDimension, i, len(row), len(bNorms))
		}
	}
	opts.normalize()

	return &Graph{
		incident: incidence,
		aNorm:    append([]float64(nil), aNorms...),
		bNorm:    append([]float64(nil), bNorms...),
		opts:     opts,
	}, nil
}

// Incident reports whether A-vertex i and B-vertex j are joined.
func (g *Graph) Incident(i, j int) bool { return g.incident[i][j] }

// Cover returns a minimum-weight vertex cover of the subgraph induced by
// A-vertices aIdx and B-vertices bIdx.
//
// Steps:
//  1. Validate indices; both sides must be non-empty.
//  2. Normalize squared norms per side. A side of total weight 0 makes
//     the ratio irreducible.
//  3. Build s→a, a→b (+Inf), b→t and take a min cut.
//  4. Cover = A-vertices cut from s ∪ B-vertices reachable from s.
//  5. The cover is trivial if it weighs ≥ 1−Tolerance or leaves one of
//     the two derived ratios without edges on a side; a trivial cover is
//     reported as all of A and none of B.
func (g *Graph) Cover(ctx context.Context, aIdx, bIdx []int) (Cover, error) {
	// 1) Validate
	if len(aIdx) == 0 || len(bIdx) == 0 {
		return Cover{}, fmt.Errorf("%w: |A|=%d |B|=%d", ErrEmptySide, len(aIdx), len(bIdx))
	}
	for _, i := range aIdx {
		if i < 0 || i >= len(g.aNorm) {
			return Cover{}, fmt.Errorf("%w: A-vertex %d of %d", ErrIndex, i, len(g.aNorm))
		}
	}
	for _, j := range bIdx {
		if j < 0 || j >= len(g.bNorm) {
			return Cover{}, fmt.Errorf("%w: B-vertex %d of %d", ErrIndex, j, len(g.bNorm))
		}
	}

	// 2) Normalized weights
	aw, aSum := squaredWeights(g.aNorm, aIdx)
	bw, bSum := squaredWeights(g.bNorm, bIdx)
	if aSum == 0 || bSum == 0 {
		return g.trivial(aIdx, bIdx, math.Inf(1)), nil
	}

	// 3) Min cut
	n := flow.NewNetwork()
	n.AddVertex(source)
	n.AddVertex(sink)
	for k, i := range aIdx {
		if err := n.AddArc(source, aName(i), aw[k]/aSum); err != nil {
			return Cover{}, err
		}
	}
	for _, i := range aIdx {
		for _, j := range bIdx {
			if g.incident[i][j] {
				if err := n.AddArc(aName(i), bName(j), math.Inf(1)); err != nil {
					return Cover{}, err
				}
			}
		}
	}
	for k, j := range bIdx {
		if err := n.AddArc(bName(j), sink, bw[k]/bSum); err != nil {
			return Cover{}, err
		}
	}
	value, side, err := flow.MinCut(ctx, n, source, sink, g.opts.Algorithm, flow.Options{
		Epsilon: g.opts.Tolerance,
		Logger:  g.opts.Logger,
	})
	if err != nil {
		return Cover{}, err
	}

	// 4) Read the cover
	c := Cover{Weight: value}
	for _, i := range aIdx {
		if side[aName(i)] {
			c.AOut = append(c.AOut, i)
		} else {
			c.AIn = append(c.AIn, i)
		}
	}
	for _, j := range bIdx {
		if side[bName(j)] {
			c.BIn = append(c.BIn, j)
		} else {
			c.BOut = append(c.BOut, j)
		}
	}

	// 5) Triviality
	trivial := value >= 1-g.opts.Tolerance ||
		len(c.AIn) == 0 || len(c.AOut) == 0 ||
		len(c.BIn) == 0 || len(c.BOut) == 0
	g.opts.Logger.Debug("vertex cover",
		slog.Int("a", len(aIdx)),
		slog.Int("b", len(bIdx)),
		slog.Float64("weight", value),
		slog.Bool("trivial", trivial))
	if trivial {
		return g.trivial(aIdx, bIdx, value), nil
	}

	return c, nil
}

func (g *Graph) trivial(aIdx, bIdx []int, weight float64) Cover {
	return Cover{
		AIn:     append([]int(nil), aIdx...),
		BOut:    append([]int(nil), bIdx...),
		Weight:  weight,
		trivial: true,
	}
}

func squaredWeights(norms []float64, idx []int) ([]float64, float64) {
	w := make([]float64, len(idx))
	var sum float64
	for k, i := range idx {
		w[k] = norms[i] * norms[i]
		sum += w[k]
	}

	return w, sum
}

func aName(i int) string { return "a" + strconv.Itoa(i) }
func bName(j int) string { return "b" + strconv.Itoa(j) }
