package attrib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/split"
)

func TestNormAndZero(t *testing.T) {
	assert.InDelta(t, 5.0, attrib.Of(3, 4).Norm(), 1e-12)
	assert.Equal(t, 0.0, attrib.Attribute(nil).Norm())
	assert.True(t, attrib.Zero(3).IsZero())
	assert.False(t, attrib.Of(0, 1e-300).IsZero())
}

func TestArithmetic(t *testing.T) {
	a := attrib.Of(1, 2)
	b := attrib.Of(3, 6)

	assert.Equal(t, attrib.Of(-2, -4), attrib.Difference(a, b))
	assert.Equal(t, attrib.Of(4, 8), attrib.Sum(a, b))
	assert.Equal(t, attrib.Of(2, 4), a.Scale(2))
	assert.True(t, attrib.WeightedAverage(a, b, 0.25).ApproxEqual(attrib.Of(1.5, 3), 1e-12))
	assert.True(t, attrib.WeightedAverage(a, b, 0).Equal(a))
	assert.True(t, attrib.WeightedAverage(a, b, 1).Equal(b))

	assert.Equal(t, attrib.Of(1, 2), a, "operations never write the receiver")
}

func TestMissingActsAsZero(t *testing.T) {
	a := attrib.Of(2)
	assert.Equal(t, attrib.Of(2), attrib.Difference(a, nil))
	assert.Equal(t, attrib.Of(-2), attrib.Difference(nil, a))
	assert.True(t, attrib.WeightedAverage(nil, a, 0.5).Equal(attrib.Of(1)))
	assert.True(t, attrib.Of(0, 0).Equal(nil))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, attrib.Of(1).ApproxEqual(attrib.Of(1+1e-13), 1e-9))
	assert.False(t, attrib.Of(1).ApproxEqual(attrib.Of(1.1), 1e-9))
}

func TestStringAndLength(t *testing.T) {
	assert.Equal(t, "0.5", attrib.Of(0.5).String())
	assert.Equal(t, "[1 2.5]", attrib.Of(1, 2.5).String())
	assert.Equal(t, 0.5, attrib.Of(0.5, 9).BranchLength())
	assert.Equal(t, 0.0, attrib.Attribute(nil).BranchLength())
	assert.False(t, math.IsNaN(attrib.Zero(0).Norm()))
}

func TestBranchLengthIsNotNorm(t *testing.T) {
	a := attrib.Of(-3, 4)
	assert.Equal(t, -3.0, a.BranchLength())
	assert.Equal(t, 5.0, a.Norm())

	e := phylo.NewEdge(split.New(4, 0, 1), a, 0)
	assert.Equal(t, a.Norm(), e.Length())
	assert.NotEqual(t, a.BranchLength(), e.Length())
}
