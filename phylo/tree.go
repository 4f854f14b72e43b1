package phylo

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/split"
)

// Tree is a weighted phylogenetic tree over an ordered leaf-label sequence.
//
// A Tree is exclusively owned by the computation that holds it; mutators
// (RemoveSplit, AddEdge, Normalize, ...) are intended for local copies made
// with Clone.
type Tree struct {
	edges     []Edge
	leaves    []string
	leafAttrs []attrib.Attribute

	// bySplit maps split.Key() to the index of the edge carrying that split.
	bySplit map[string]int
}

// NewTree builds a tree from internal edges, leaf labels, and per-leaf
// pendant attributes. leafAttrs may be nil, in which case every leaf gets a
// zero branch length.
//
// Edges whose Original split is unset get their own split as provenance.
// The inputs are copied; the caller keeps ownership of its slices.
func NewTree(edges []Edge, leaves []string, leafAttrs []attrib.Attribute) (*Tree, error) {
	t := &Tree{
		edges:   make([]Edge, 0, len(edges)),
		leaves:  append([]string(nil), leaves...),
		bySplit: make(map[string]int, len(edges)),
	}

	if err := t.SetLeafAttribs(leafAttrs); err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := t.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Edges returns the tree's internal edges in order.
func (t *Tree) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}

// Edge returns the i-th internal edge.
func (t *Tree) Edge(i int) Edge { return t.edges[i] }

// NumEdges returns the number of internal edges.
func (t *Tree) NumEdges() int { return len(t.edges) }

// Leaves returns the ordered leaf labels.
func (t *Tree) Leaves() []string {
	return append([]string(nil), t.leaves...)
}

// NumLeaves returns the number of leaves.
func (t *Tree) NumLeaves() int { return len(t.leaves) }

// LeafAttribs returns the pendant-edge attributes indexed by leaf position.
func (t *Tree) LeafAttribs() []attrib.Attribute {
	return append([]attrib.Attribute(nil), t.leafAttrs...)
}

// Splits returns the split of every internal edge, in edge order.
func (t *Tree) Splits() []split.Split {
	out := make([]split.Split, len(t.edges))
	for i, e := range t.edges {
		out[i] = e.Split
	}

	return out
}

// HasSplit reports whether some edge carries split s.
func (t *Tree) HasSplit(s split.Split) bool {
	_, ok := t.bySplit[s.Key()]

	return ok
}

// AttribOfSplit returns the attribute of the edge carrying s.
func (t *Tree) AttribOfSplit(s split.Split) (attrib.Attribute, bool) {
	i, ok := t.bySplit[s.Key()]
	if !ok {
		return nil, false
	}

	return t.edges[i].Attr, true
}

// EdgeNorms returns the attribute norm of every internal edge, in edge order.
func (t *Tree) EdgeNorms() []float64 {
	out := make([]float64, len(t.edges))
	for i, e := range t.edges {
		out[i] = e.Length()
	}

	return out
}

// AddEdge appends e. It fails if e's split has the wrong width or is already present.
func (t *Tree) AddEdge(e Edge) error {
	if e.Split.Len() != len(t.leaves) {
		return fmt.Errorf("%w: edge %s over %d leaves, tree has %d",
			ErrSplitWidth, e.Split, e.Split.Len(), len(t.leaves))
	}
	if t.bySplit == nil {
		t.reindex()
	}
	key := e.Split.Key()
	if _, dup := t.bySplit[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSplit, e.Split)
	}
	if e.Original.Len() == 0 {
		e.Original = e.Split
	}
	t.bySplit[key] = len(t.edges)
	t.edges = append(t.edges, e)

	return nil
}

// RemoveSplit deletes the edge carrying s and reports whether one existed.
func (t *Tree) RemoveSplit(s split.Split) bool {
	i, ok := t.bySplit[s.Key()]
	if !ok {
		return false
	}
	t.edges = append(t.edges[:i], t.edges[i+1:]...)
	t.reindex()

	return true
}

// RemoveSplits deletes every edge whose split is in splits.
func (t *Tree) RemoveSplits(splits []split.Split) {
	for _, s := range splits {
		t.RemoveSplit(s)
	}
}

// SetLeafAttribs replaces the pendant-edge attributes. A nil slice resets
// every leaf to a zero branch length.
func (t *Tree) SetLeafAttribs(attrs []attrib.Attribute) error {
	if attrs == nil {
		t.leafAttrs = make([]attrib.Attribute, len(t.leaves))
		for i := range t.leafAttrs {
			t.leafAttrs[i] = attrib.Zero(1)
		}

		return nil
	}
	if len(attrs) != len(t.leaves) {
		return fmt.Errorf("%w: got %d, want %d", ErrLeafAttribs, len(attrs), len(t.leaves))
	}
	t.leafAttrs = make([]attrib.Attribute, len(attrs))
	for i, a := range attrs {
		t.leafAttrs[i] = a.Clone()
	}

	return nil
}

// DistanceFromOrigin returns the norm of the tree as a vector of all its
// edge and leaf attributes.
func (t *Tree) DistanceFromOrigin() float64 {
	norms := t.EdgeNorms()
	for _, a := range t.leafAttrs {
		norms = append(norms, a.Norm())
	}

	return floats.Norm(norms, 2)
}

// DistanceFromOriginNoLeaves is DistanceFromOrigin restricted to internal edges.
func (t *Tree) DistanceFromOriginNoLeaves() float64 {
	return floats.Norm(t.EdgeNorms(), 2)
}

// BranchLengthSum returns the sum of every edge and leaf attribute norm.
func (t *Tree) BranchLengthSum() float64 {
	var sum float64
	for _, e := range t.edges {
		sum += e.Length()
	}
	for _, a := range t.leafAttrs {
		sum += a.Norm()
	}

	return sum
}

// Normalize scales the tree to unit DistanceFromOrigin. A tree at the
// origin is left unchanged.
func (t *Tree) Normalize() {
	t.scaleBy(t.DistanceFromOrigin())
}

// NormalizePair scales t and o by the sum of their distances from the origin.
func (t *Tree) NormalizePair(o *Tree) {
	c := t.DistanceFromOrigin() + o.DistanceFromOrigin()
	t.scaleBy(c)
	o.scaleBy(c)
}

func (t *Tree) scaleBy(c float64) {
	if c == 0 {
		return
	}
	for i := range t.edges {
		t.edges[i].Attr = t.edges[i].Attr.Scale(1 / c)
	}
	for i := range t.leafAttrs {
		t.leafAttrs[i] = t.leafAttrs[i].Scale(1 / c)
	}
}

// EdgesNotInCommonWith returns t's non-zero edges whose split is absent
// (or zero) in o.
func (t *Tree) EdgesNotInCommonWith(o *Tree) ([]Edge, error) {
	if !SameLeaves(t, o) {
		return nil, ErrLeafMismatch
	}
	var out []Edge
	for _, e := range t.edges {
		if e.IsZero() {
			continue
		}
		if a, ok := o.AttribOfSplit(e.Split); ok && !a.IsZero() {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		edges:     make([]Edge, len(t.edges)),
		leaves:    append([]string(nil), t.leaves...),
		leafAttrs: make([]attrib.Attribute, len(t.leafAttrs)),
	}
	for i, e := range t.edges {
		c.edges[i] = e.Clone()
	}
	for i, a := range t.leafAttrs {
		c.leafAttrs[i] = a.Clone()
	}
	c.reindex()

	return c
}

// Equal reports whether t and o have the same leaves, leaf attributes, and
// edge set (order-insensitive), compared exactly.
func (t *Tree) Equal(o *Tree) bool {
	return t.compare(o, func(a, b attrib.Attribute) bool { return a.Equal(b) })
}

// ApproxEqual is Equal with attributes compared within tol.
// Edges whose attribute is zero within tol are ignored on both sides.
func (t *Tree) ApproxEqual(o *Tree, tol float64) bool {
	eq := func(a, b attrib.Attribute) bool { return a.ApproxEqual(b, tol) }
	if !SameLeaves(t, o) {
		return false
	}
	for i := range t.leafAttrs {
		if !eq(t.leafAttrs[i], o.leafAttrs[i]) {
			return false
		}
	}

	return t.edgesWithin(o, eq, tol) && o.edgesWithin(t, eq, tol)
}

func (t *Tree) edgesWithin(o *Tree, eq func(a, b attrib.Attribute) bool, tol float64) bool {
	for _, e := range t.edges {
		other, ok := o.AttribOfSplit(e.Split)
		if !ok {
			if e.Length() > tol {
				return false
			}
			continue
		}
		if !eq(e.Attr, other) {
			return false
		}
	}

	return true
}

func (t *Tree) compare(o *Tree, eq func(a, b attrib.Attribute) bool) bool {
	if !SameLeaves(t, o) || len(t.edges) != len(o.edges) {
		return false
	}
	for i := range t.leafAttrs {
		if !eq(t.leafAttrs[i], o.leafAttrs[i]) {
			return false
		}
	}
	for _, e := range t.edges {
		other, ok := o.AttribOfSplit(e.Split)
		if !ok || !eq(e.Attr, other) {
			return false
		}
	}

	return true
}

// String renders leaves, edges, and leaf attributes on one line.
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteString("Leaves: ")
	b.WriteString(strings.Join(t.leaves, " "))
	if len(t.edges) > 0 {
		parts := make([]string, len(t.edges))
		for i, e := range t.edges {
			parts[i] = e.String()
		}
		b.WriteString("; edges: ")
		b.WriteString(strings.Join(parts, " "))
	}
	if len(t.leafAttrs) > 0 {
		parts := make([]string, len(t.leafAttrs))
		for i, a := range t.leafAttrs {
			parts[i] = a.String()
		}
		b.WriteString("; leaf edges: [")
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("]")
	}

	return b.String()
}

func (t *Tree) reindex() {
	t.bySplit = make(map[string]int, len(t.edges))
	for i, e := range t.edges {
		t.bySplit[e.Split.Key()] = i
	}
}

// SameLeaves reports whether a and b have identical ordered leaf labels.
func SameLeaves(a, b *Tree) bool {
	if len(a.leaves) != len(b.leaves) {
		return false
	}
	for i := range a.leaves {
		if a.leaves[i] != b.leaves[i] {
			return false
		}
	}

	return true
}
