package ratio

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/treespace/phylo"
)

// Ratio is one cone-path segment: edges E of tree A and edges F of tree B
// with their cached norms.
type Ratio struct {
	e, f       []phylo.Edge
	eLen, fLen float64
}

// New returns the ratio (e, f) with norms computed from the edge attributes.
func New(e, f []phylo.Edge) Ratio {
	return Ratio{
		e:    append([]phylo.Edge(nil), e...),
		f:    append([]phylo.Edge(nil), f...),
		eLen: norm(e),
		fLen: norm(f),
	}
}

func norm(edges []phylo.Edge) float64 {
	lengths := make([]float64, len(edges))
	for i, e := range edges {
		lengths[i] = e.Length()
	}

	return floats.Norm(lengths, 2)
}

// EEdges returns the edges leaving tree A.
func (r Ratio) EEdges() []phylo.Edge { return append([]phylo.Edge(nil), r.e...) }

// FEdges returns the edges entering toward tree B.
func (r Ratio) FEdges() []phylo.Edge { return append([]phylo.Edge(nil), r.f...) }

// ELength returns ‖E‖.
func (r Ratio) ELength() float64 { return r.eLen }

// FLength returns ‖F‖.
func (r Ratio) FLength() float64 { return r.fLen }

// Time returns ‖E‖/(‖E‖+‖F‖), or 0 when both norms are zero.
func (r Ratio) Time() float64 {
	if r.eLen+r.fLen == 0 {
		return 0
	}

	return r.eLen / (r.eLen + r.fLen)
}

// Value returns ‖E‖/‖F‖; +Inf when only F is zero and 0 when both are.
func (r Ratio) Value() float64 {
	switch {
	case r.fLen != 0:
		return r.eLen / r.fLen
	case r.eLen != 0:
		return math.Inf(1)
	default:
		return 0
	}
}

// IsEmpty reports whether the ratio has no edges on either side.
func (r Ratio) IsEmpty() bool { return len(r.e) == 0 && len(r.f) == 0 }

// Reverse swaps E and F, giving the same segment traversed from B to A.
func (r Ratio) Reverse() Ratio {
	return Ratio{e: r.f, f: r.e, eLen: r.fLen, fLen: r.eLen}
}

// Combine merges two ratios into one whose sides are the unions of theirs.
func Combine(a, b Ratio) Ratio {
	return Ratio{
		e:    append(append([]phylo.Edge(nil), a.e...), b.e...),
		f:    append(append([]phylo.Edge(nil), a.f...), b.f...),
		eLen: math.Hypot(a.eLen, b.eLen),
		fLen: math.Hypot(a.fLen, b.fLen),
	}
}

// String renders the ratio as "[E splits]/[F splits] ‖E‖/‖F‖".
func (r Ratio) String() string {
	side := func(edges []phylo.Edge) string {
		parts := make([]string, len(edges))
		for i, e := range edges {
			parts[i] = e.Split.String()
		}

		return "[" + strings.Join(parts, " ") + "]"
	}

	return fmt.Sprintf("%s/%s %g/%g", side(r.e), side(r.f), r.eLen, r.fLen)
}
