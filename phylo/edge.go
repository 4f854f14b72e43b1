package phylo

import (
	"fmt"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/split"
)

// NoID marks an edge that does not correspond to an edge of a parsed tree,
// such as a synthesized common edge.
const NoID = -1

// Edge is an internal tree edge: a split, its attribute, and its provenance.
type Edge struct {
	// Split is the bipartition in the current (possibly contracted) leaf space.
	Split split.Split

	// Attr is the edge's attribute; usually a single branch length.
	Attr attrib.Attribute

	// Original is the split in the leaf space of the tree the edge came from.
	Original split.Split

	// OriginalID is the edge's index in the tree it came from, or NoID.
	OriginalID int
}

// NewEdge returns an edge whose provenance is its own split.
func NewEdge(s split.Split, a attrib.Attribute, id int) Edge {
	return Edge{Split: s, Attr: a, Original: s, OriginalID: id}
}

// Length returns the norm of the edge's attribute.
func (e Edge) Length() float64 { return e.Attr.Norm() }

// IsZero reports whether the edge's attribute is all zero.
func (e Edge) IsZero() bool { return e.Attr.IsZero() }

// Clone returns a copy whose attribute shares no storage with e.
func (e Edge) Clone() Edge {
	e.Attr = e.Attr.Clone()

	return e
}

// String renders the edge as "split:attribute".
func (e Edge) String() string {
	return fmt.Sprintf("%s:%s", e.Split, e.Attr)
}
