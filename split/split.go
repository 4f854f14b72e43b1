package split

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// Split is an immutable bipartition of N leaves, stored as the set of leaf
// indices on the "inside" of the edge.
//
// The zero value is an empty split over zero leaves.
type Split struct {
	n     int      // number of leaves in the leaf space
	words []uint64 // packed membership bits, never written after construction
}

// New returns the split over n leaves whose inside set is leaves.
// It panics with ErrLeafIndex if a leaf index is outside [0, n), mirroring
// slice indexing.
func New(n int, leaves ...int) Split {
	words := make([]uint64, wordCount(n))
	for _, i := range leaves {
		if i < 0 || i >= n {
			panic(fmt.Errorf("%w: %d not in [0,%d)", ErrLeafIndex, i, n))
		}
		words[i/wordBits] |= 1 << uint(i%wordBits)
	}

	return Split{n: n, words: words}
}

// Full returns the split containing every one of the n leaves.
func Full(n int) Split {
	s := Split{n: n, words: make([]uint64, wordCount(n))}
	for i := 0; i < n; i++ {
		s.words[i/wordBits] |= 1 << uint(i%wordBits)
	}

	return s
}

// Parse reads a bit string such as "0110", where character i describes leaf i.
func Parse(bitString string) (Split, error) {
	n := len(bitString)
	words := make([]uint64, wordCount(n))
	for i := 0; i < n; i++ {
		switch bitString[i] {
		case '1':
			words[i/wordBits] |= 1 << uint(i%wordBits)
		case '0':
		default:
			return Split{}, fmt.Errorf("%w: %q", ErrBadBitString, bitString)
		}
	}

	return Split{n: n, words: words}, nil
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the number of leaves N of the leaf space.
func (s Split) Len() int { return s.n }

// Count returns the number of leaves inside the split.
func (s Split) Count() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// IsEmpty reports whether no leaf is inside the split.
func (s Split) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Has reports whether leaf i is inside the split.
func (s Split) Has(i int) bool {
	if i < 0 || i >= s.n {
		return false
	}

	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Leaves returns the inside leaf indices in ascending order.
func (s Split) Leaves() []int {
	out := make([]int, 0, s.Count())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &= w - 1
		}
	}

	return out
}

// With returns a copy of s with leaf i added (the "addOne" operation).
func (s Split) With(i int) Split {
	if i < 0 || i >= s.n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrLeafIndex, i, s.n))
	}
	out := s.clone()
	out.words[i/wordBits] |= 1 << uint(i%wordBits)

	return out
}

// AndNot returns s \ o.
func (s Split) AndNot(o Split) Split {
	out := s.clone()
	for i := range out.words {
		out.words[i] &^= o.word(i)
	}

	return out
}

// And returns s ∩ o.
func (s Split) And(o Split) Split {
	out := s.clone()
	for i := range out.words {
		out.words[i] &= o.word(i)
	}

	return out
}

// Or returns s ∪ o.
func (s Split) Or(o Split) Split {
	out := s.clone()
	for i := range out.words {
		out.words[i] |= o.word(i)
	}

	return out
}

// Complement returns the leaves of the leaf space not inside s.
func (s Split) Complement() Split {
	return Full(s.n).AndNot(s)
}

// Contains reports whether every leaf of o is inside s (o ⊆ s).
func (s Split) Contains(o Split) bool {
	for i := range o.words {
		if o.words[i]&^s.word(i) != 0 {
			return false
		}
	}

	return true
}

// ProperlyContains reports whether o ⊂ s.
func (s Split) ProperlyContains(o Split) bool {
	return s.Contains(o) && !s.Equal(o)
}

// Disjoint reports whether s and o share no leaf.
func (s Split) Disjoint(o Split) bool {
	for i := range s.words {
		if s.words[i]&o.word(i) != 0 {
			return false
		}
	}

	return true
}

// CompatibleWith reports whether s and o can coexist in one tree.
func (s Split) CompatibleWith(o Split) bool {
	return s.Disjoint(o) || s.Contains(o) || o.Contains(s)
}

// Crosses reports whether s and o are incompatible.
func (s Split) Crosses(o Split) bool {
	return !s.CompatibleWith(o)
}

// CompatibleWithAll reports whether s is compatible with every split in others.
func (s Split) CompatibleWithAll(others []Split) bool {
	for _, o := range others {
		if !s.CompatibleWith(o) {
			return false
		}
	}

	return true
}

// Equal reports whether s and o describe the same leaf set over the same leaf space.
func (s Split) Equal(o Split) bool {
	if s.n != o.n {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}

	return true
}

// Key returns a compact string usable as a map key; equal splits have equal keys.
func (s Split) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.n))
	for _, w := range s.words {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(w, 36))
	}

	return b.String()
}

// String renders the split as a bit string, leaf 0 first.
func (s Split) String() string {
	b := make([]byte, s.n)
	for i := 0; i < s.n; i++ {
		if s.Has(i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

func (s Split) word(i int) uint64 {
	if i < len(s.words) {
		return s.words[i]
	}

	return 0
}

func (s Split) clone() Split {
	words := make([]uint64, len(s.words))
	copy(words, s.words)

	return Split{n: s.n, words: words}
}
