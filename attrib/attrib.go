// Package attrib implements edge attributes: real vectors attached to the
// splits and pendant edges of a phylogenetic tree.
//
// An ordinary branch length is the one-component case. Every operation
// returns a new Attribute; receivers are never written. A nil (or shorter)
// attribute behaves as a zero vector padded to the partner's dimension, so
// trees whose leaves carry no lengths still compare cleanly.
//
// Vector arithmetic is delegated to gonum's floats package.
package attrib

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Attribute is an ordered vector of real components.
type Attribute []float64

// Of returns an attribute holding the given components.
func Of(v ...float64) Attribute {
	out := make(Attribute, len(v))
	copy(out, v)

	return out
}

// Zero returns the all-zero attribute of dimension n.
func Zero(n int) Attribute {
	return make(Attribute, n)
}

// Clone returns a copy of a that shares no storage with it.
func (a Attribute) Clone() Attribute {
	if a == nil {
		return nil
	}

	return Of(a...)
}

// Dim returns the number of components.
func (a Attribute) Dim() int { return len(a) }

// BranchLength returns the first component, the branch length of a scalar
// attribute. It is signed and ignores the other components; use Norm for the
// length of the edge in tree space.
func (a Attribute) BranchLength() float64 {
	if len(a) == 0 {
		return 0
	}

	return a[0]
}

// Norm returns the Euclidean norm of a.
func (a Attribute) Norm() float64 {
	if len(a) == 0 {
		return 0
	}

	return floats.Norm(a, 2)
}

// IsZero reports whether every component is exactly zero.
func (a Attribute) IsZero() bool {
	for _, v := range a {
		if v != 0 {
			return false
		}
	}

	return true
}

// Scale returns k·a.
func (a Attribute) Scale(k float64) Attribute {
	out := make(Attribute, len(a))
	floats.ScaleTo(out, k, a)

	return out
}

// Difference returns a − b.
func Difference(a, b Attribute) Attribute {
	x, y := align(a, b)
	out := make(Attribute, len(x))
	floats.SubTo(out, x, y)

	return out
}

// Sum returns a + b.
func Sum(a, b Attribute) Attribute {
	x, y := align(a, b)
	out := make(Attribute, len(x))
	floats.AddTo(out, x, y)

	return out
}

// WeightedAverage returns (1−t)·a + t·b.
func WeightedAverage(a, b Attribute, t float64) Attribute {
	x, y := align(a, b)
	out := make(Attribute, len(x))
	floats.ScaleTo(out, 1-t, x)
	floats.AddScaledTo(out, out, t, y)

	return out
}

// Equal reports exact component-wise equality (after zero padding).
func (a Attribute) Equal(o Attribute) bool {
	x, y := align(a, o)

	return floats.Equal(x, y)
}

// ApproxEqual reports component-wise equality within tol (after zero padding).
func (a Attribute) ApproxEqual(o Attribute, tol float64) bool {
	x, y := align(a, o)
	for i := range x {
		if !scalar.EqualWithinAbsOrRel(x[i], y[i], tol, tol) {
			return false
		}
	}

	return true
}

// String renders a scalar attribute as its value and a vector as "[v0 v1 ...]".
func (a Attribute) String() string {
	if len(a) == 1 {
		return formatFloat(a[0])
	}
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = formatFloat(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// align pads the shorter of a and b with zeros so both share one dimension.
func align(a, b Attribute) (Attribute, Attribute) {
	switch {
	case len(a) == len(b):
		return a, b
	case len(a) < len(b):
		p := make(Attribute, len(b))
		copy(p, a)

		return p, b
	default:
		p := make(Attribute, len(a))
		copy(p, b)

		return a, p
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
