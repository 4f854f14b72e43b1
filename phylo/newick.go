package phylo

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"

	"github.com/katalvlaran/treespace/attrib"
	"github.com/katalvlaran/treespace/split"
)

// defaultLength is the branch length of a node written without ":length".
const defaultLength = 0.0

// FormatError describes malformed Newick text. It unwraps to ErrFormat.
type FormatError struct {
	Offset int    // byte offset into the whitespace-stripped text, -1 if unknown
	Reason string // what went wrong
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
	}

	return fmt.Sprintf("%s at offset %d: %s", ErrFormat, e.Offset, e.Reason)
}

// Unwrap lets errors.Is(err, ErrFormat) match.
func (e *FormatError) Unwrap() error { return ErrFormat }

// Parse reads a Newick string into a Tree.
//
// Steps:
//  1. Strip whitespace and anything before the first '('; require a trailing ';'.
//  2. Check that parentheses balance and drop the root's own label and length.
//  3. Hand the text to the gotree Newick parser.
//  4. Sort the leaf labels to fix leaf indices; duplicate or empty labels fail.
//  5. Emit one edge per non-root internal node in post-order. Internal node
//     labels are ignored and a missing ":length" means length 0.
//  6. If !rooted, complement every split containing the last leaf and merge
//     splits that coincide (summing their attributes).
//
// The caller never receives a partially built tree: any failure returns
// a *FormatError and a nil tree.
func Parse(text string, rooted bool) (*Tree, error) {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text)

	start := strings.IndexByte(text, '(')
	if start < 0 {
		return nil, &FormatError{Offset: 0, Reason: "no opening parenthesis"}
	}
	end := strings.LastIndexByte(text, ';')
	if end < start {
		return nil, &FormatError{Offset: len(text), Reason: "missing terminating ';'"}
	}
	text = text[start:end]

	closing, err := rootClose(text)
	if err != nil {
		return nil, err
	}

	gt, err := newick.NewParser(strings.NewReader(text[:closing+1] + ";")).Parse()
	if err != nil {
		return nil, &FormatError{Offset: -1, Reason: err.Error()}
	}

	return fromGotree(gt, rooted)
}

// rootClose checks that parentheses balance and returns the index of the
// ')' closing the root clade, which opens at text[0].
func rootClose(text string) (int, error) {
	depth, closing := 0, -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return 0, &FormatError{Offset: i, Reason: "unbalanced ')'"}
			}
			if depth == 0 && closing < 0 {
				closing = i
			}
		}
	}
	if depth != 0 {
		return 0, &FormatError{Offset: len(text), Reason: fmt.Sprintf("%d unclosed '('", depth)}
	}
	if strings.IndexByte(text[closing+1:], '(') >= 0 {
		return 0, &FormatError{Offset: closing + 1, Reason: "unexpected text after root clade"}
	}

	return closing, nil
}

// children lists the edges of n other than the one it was reached through.
func children(n *tree.Node, from *tree.Edge) []*tree.Edge {
	out := make([]*tree.Edge, 0, len(n.Edges()))
	for _, e := range n.Edges() {
		if e != from {
			out = append(out, e)
		}
	}

	return out
}

// far returns the endpoint of e that is not n.
func far(e *tree.Edge, n *tree.Node) *tree.Node {
	if e.Left() == n {
		return e.Right()
	}

	return e.Left()
}

func branchLength(e *tree.Edge) float64 {
	if e == nil || e.Length() == tree.NIL_LENGTH {
		return defaultLength
	}

	return e.Length()
}

// fromGotree turns a parsed gotree tree into splits over sorted leaf labels.
func fromGotree(gt *tree.Tree, rooted bool) (*Tree, error) {
	root := gt.Root()
	if root == nil {
		return nil, &FormatError{Offset: -1, Reason: "empty tree"}
	}

	// 1) Collect leaf labels and fix their indices.
	var labels []string
	var collect func(n *tree.Node, from *tree.Edge) error
	collect = func(n *tree.Node, from *tree.Edge) error {
		kids := children(n, from)
		if len(kids) == 0 {
			if n.Name() == "" {
				return &FormatError{Offset: -1, Reason: "empty leaf label"}
			}
			labels = append(labels, n.Name())

			return nil
		}
		for _, e := range kids {
			if err := collect(far(e, n), e); err != nil {
				return err
			}
		}

		return nil
	}
	if err := collect(root, nil); err != nil {
		return nil, err
	}
	sort.Strings(labels)
	for i := 1; i < len(labels); i++ {
		if labels[i] == labels[i-1] {
			return nil, &FormatError{Offset: -1, Reason: fmt.Sprintf("duplicate leaf label %q", labels[i])}
		}
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	// 2) Record the split below every non-root internal node, post-order.
	nLeaves := len(labels)
	leafAttrs := make([]attrib.Attribute, nLeaves)
	type rawEdge struct {
		s split.Split
		a attrib.Attribute
	}
	var raw []rawEdge
	var below func(n *tree.Node, from *tree.Edge) split.Split
	below = func(n *tree.Node, from *tree.Edge) split.Split {
		kids := children(n, from)
		if len(kids) == 0 {
			i := index[n.Name()]
			leafAttrs[i] = attrib.Of(branchLength(from))

			return split.New(nLeaves, i)
		}
		acc := split.New(nLeaves)
		for _, e := range kids {
			acc = acc.Or(below(far(e, n), e))
		}
		if from != nil {
			raw = append(raw, rawEdge{s: acc, a: attrib.Of(branchLength(from))})
		}

		return acc
	}
	below(root, nil)

	// 3) Complement, drop trivial splits and merge duplicates.
	full := split.Full(nLeaves)
	last := nLeaves - 1
	var edges []Edge
	pos := make(map[string]int)
	for _, r := range raw {
		s := r.s
		if !rooted && s.Has(last) {
			s = s.Complement()
		}
		if s.IsEmpty() || s.Equal(full) {
			continue
		}
		if i, dup := pos[s.Key()]; dup {
			edges[i].Attr = attrib.Sum(edges[i].Attr, r.a)
			continue
		}
		pos[s.Key()] = len(edges)
		edges = append(edges, NewEdge(s, r.a, len(edges)))
	}

	t, err := NewTree(edges, labels, leafAttrs)
	if err != nil {
		return nil, &FormatError{Offset: -1, Reason: err.Error()}
	}

	return t, nil
}

// Newick renders the tree in Newick format through gotree. Splits are
// written as clades hanging from a root that holds every leaf not inside a
// top-level split; siblings are ordered by their smallest leaf. With
// withLengths, each leaf and clade gets ":length" from BranchLength.
func (t *Tree) Newick(withLengths bool) string {
	return t.gotree(withLengths).Newick()
}

// gotree builds the equivalent gotree tree, rooted at a multifurcating node.
func (t *Tree) gotree(withLengths bool) *tree.Tree {
	type item struct {
		node  *tree.Node
		attr  attrib.Attribute
		cover split.Split
		first int
	}

	gt := tree.NewTree()
	leaf := func(i int) item {
		n := gt.NewNode()
		n.SetName(t.leaves[i])
		var a attrib.Attribute
		if i < len(t.leafAttrs) {
			a = t.leafAttrs[i]
		}

		return item{node: n, attr: a, cover: split.New(len(t.leaves), i), first: i}
	}
	attach := func(parent *tree.Node, items []item) {
		sort.Slice(items, func(i, j int) bool { return items[i].first < items[j].first })
		for _, it := range items {
			e := gt.ConnectNodes(parent, it.node)
			if withLengths {
				e.SetLength(it.attr.BranchLength())
			}
		}
	}

	// 1) Build clades from the smallest split up.
	order := make([]int, 0, len(t.edges))
	for i, e := range t.edges {
		if !e.Split.IsEmpty() {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return t.edges[order[i]].Split.Count() < t.edges[order[j]].Split.Count()
	})

	var open []item
	for _, i := range order {
		e := t.edges[i]
		var items, rest []item
		free := e.Split
		for _, it := range open {
			if e.Split.Contains(it.cover) {
				items = append(items, it)
				free = free.AndNot(it.cover)
			} else {
				rest = append(rest, it)
			}
		}
		for _, l := range free.Leaves() {
			items = append(items, leaf(l))
		}
		n := gt.NewNode()
		attach(n, items)
		open = append(rest, item{node: n, attr: e.Attr, cover: e.Split, first: e.Split.Leaves()[0]})
	}

	// 2) Hang what is left from the root.
	free := split.Full(len(t.leaves))
	for _, it := range open {
		free = free.AndNot(it.cover)
	}
	for _, l := range free.Leaves() {
		open = append(open, leaf(l))
	}
	root := gt.NewNode()
	attach(root, open)
	gt.SetRoot(root)

	return gt
}
