package split_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treespace/split"
)

func TestNewAndQueries(t *testing.T) {
	s := split.New(6, 1, 3, 4)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{1, 3, 4}, s.Leaves())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(0))
	assert.False(t, s.Has(42), "out-of-range leaf is never inside")
	assert.Equal(t, "010110", s.String())
	assert.False(t, s.IsEmpty())
	assert.True(t, split.New(6).IsEmpty())
}

func TestNewPanicsOnBadLeaf(t *testing.T) {
	assert.Panics(t, func() { split.New(3, 3) })
	assert.Panics(t, func() { split.New(3).With(-1) })
}

func TestParse(t *testing.T) {
	s, err := split.Parse("0110")
	require.NoError(t, err)
	assert.True(t, s.Equal(split.New(4, 1, 2)))

	_, err = split.Parse("01x0")
	require.True(t, errors.Is(err, split.ErrBadBitString))
}

func TestWideSplitsSpanWords(t *testing.T) {
	s := split.New(130, 0, 64, 129)
	assert.Equal(t, []int{0, 64, 129}, s.Leaves())
	c := s.Complement()
	assert.Equal(t, 127, c.Count())
	assert.True(t, c.Disjoint(s))
	assert.True(t, c.Or(s).Equal(split.Full(130)))
}

func TestValueSemantics(t *testing.T) {
	s := split.New(4, 0)
	t2 := s.With(1)
	assert.Equal(t, []int{0}, s.Leaves(), "With must not alias the receiver")
	assert.Equal(t, []int{0, 1}, t2.Leaves())

	u := t2.AndNot(s)
	assert.Equal(t, []int{1}, u.Leaves())
	assert.Equal(t, []int{0, 1}, t2.Leaves(), "AndNot must not alias the receiver")
}

func TestRelations(t *testing.T) {
	ab := split.New(5, 0, 1)
	abc := split.New(5, 0, 1, 2)
	cd := split.New(5, 2, 3)
	de := split.New(5, 3, 4)

	cases := []struct {
		name       string
		s, o       split.Split
		contains   bool
		proper     bool
		compatible bool
	}{
		{"superset", abc, ab, true, true, true},
		{"subset", ab, abc, false, false, true},
		{"self", ab, ab, true, false, true},
		{"disjoint", ab, de, false, false, true},
		{"crossing", abc, cd, false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contains, tc.s.Contains(tc.o))
			assert.Equal(t, tc.proper, tc.s.ProperlyContains(tc.o))
			assert.Equal(t, tc.compatible, tc.s.CompatibleWith(tc.o))
			assert.Equal(t, tc.compatible, tc.o.CompatibleWith(tc.s), "compatibility is symmetric")
			assert.Equal(t, !tc.compatible, tc.s.Crosses(tc.o))
		})
	}

	assert.True(t, ab.CompatibleWithAll([]split.Split{abc, de}))
	assert.False(t, abc.CompatibleWithAll([]split.Split{ab, cd}))
	assert.True(t, ab.CompatibleWithAll(nil))
}

func TestEqualAndKey(t *testing.T) {
	a := split.New(4, 1, 2)
	b := split.New(4, 2).With(1)
	c := split.New(5, 1, 2)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c), "different leaf spaces never compare equal")
	assert.NotEqual(t, a.Key(), c.Key())
}

func BenchmarkCompatibleWith(b *testing.B) {
	x := split.New(200, 3, 70, 150)
	y := split.New(200, 70, 150, 199)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.CompatibleWith(y)
	}
}
