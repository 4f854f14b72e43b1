package ratio

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Sequence is an ordered list of ratios describing a cone path.
type Sequence []Ratio

// Clone returns a copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}

	return append(Sequence(nil), s...)
}

// Times returns the time of every ratio, in order.
func (s Sequence) Times() []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.Time()
	}

	return out
}

// Distance returns the cone-path length sqrt(Σ(‖E_i‖+‖F_i‖)²).
func (s Sequence) Distance() float64 {
	lengths := make([]float64, len(s))
	for i, r := range s {
		lengths[i] = r.eLen + r.fLen
	}

	return floats.Norm(lengths, 2)
}

// IsNonDescending reports whether ratio times never decrease.
func (s Sequence) IsNonDescending() bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i].Time() > s[i+1].Time() {
			return false
		}
	}

	return true
}

// NonDescendingMinDist returns the shortest non-descending sequence
// obtainable from s by merging adjacent ratios. Neighbours out of order
// are combined and the scan steps back one position, since the merged
// ratio may now precede its left neighbour.
func (s Sequence) NonDescendingMinDist() Sequence {
	return s.mergeWhile(func(a, b Ratio) bool { return a.Time() > b.Time() })
}

// AscendingMinDist is NonDescendingMinDist that also merges equal times,
// leaving a strictly ascending sequence. Its length plus one is the number
// of orthants the geodesic passes through.
func (s Sequence) AscendingMinDist() Sequence {
	return s.mergeWhile(func(a, b Ratio) bool { return a.Time() >= b.Time() })
}

func (s Sequence) mergeWhile(merge func(a, b Ratio) bool) Sequence {
	out := s.Clone()
	for i := 0; i+1 < len(out); {
		if !merge(out[i], out[i+1]) {
			i++
			continue
		}
		out[i] = Combine(out[i], out[i+1])
		out = append(out[:i+1], out[i+2:]...)
		if i > 0 {
			i--
		}
	}

	return out
}

// Reverse returns the sequence traversed from B to A: order reversed and
// each ratio's sides swapped.
func (s Sequence) Reverse() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, r := range s {
		out[len(s)-1-i] = r.Reverse()
	}

	return out
}

// Interleave merges two independent sequences by time after making each
// non-descending. On equal times a's ratio comes first.
func Interleave(a, b Sequence) Sequence {
	a, b = a.NonDescendingMinDist(), b.NonDescendingMinDist()
	out := make(Sequence, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Time() <= b[j].Time() {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// String renders one ratio per line.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}

	return strings.Join(parts, "\n")
}
