package flow

import (
	"math"
)

// arc is one direction of a residual pair; rev indexes its partner.
type arc struct {
	to  int
	cap float64
	rev int
}

// Network is a directed capacity network over string vertices.
// The zero value is not usable; call NewNetwork.
type Network struct {
	index map[string]int
	names []string
	adj   [][]int // adj[u] lists arc indices leaving u, in insertion order
	arcs  []arc
	pair  map[[2]int]int // (u,v) → index of the arc u→v
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		index: make(map[string]int),
		pair:  make(map[[2]int]int),
	}
}

// AddVertex adds v if absent and returns its dense index.
func (n *Network) AddVertex(v string) int {
	if i, ok := n.index[v]; ok {
		return i
	}
	i := len(n.names)
	n.index[v] = i
	n.names = append(n.names, v)
	n.adj = append(n.adj, nil)

	return i
}

// HasVertex reports whether v is in the network.
func (n *Network) HasVertex(v string) bool {
	_, ok := n.index[v]

	return ok
}

// Vertices returns vertex names in insertion order.
func (n *Network) Vertices() []string {
	return append([]string(nil), n.names...)
}

// AddArc adds capacity c to the arc from→to, creating vertices as needed.
// Repeated calls for the same ordered pair accumulate.
func (n *Network) AddArc(from, to string, c float64) error {
	if c < 0 || math.IsNaN(c) {
		return EdgeError{From: from, To: to, Cap: c}
	}
	u, v := n.AddVertex(from), n.AddVertex(to)
	if i, ok := n.pair[[2]int{u, v}]; ok {
		n.arcs[i].cap += c

		return nil
	}

	fwd, back := len(n.arcs), len(n.arcs)+1
	n.arcs = append(n.arcs, arc{to: v, cap: c, rev: back}, arc{to: u, cap: 0, rev: fwd})
	n.adj[u] = append(n.adj[u], fwd)
	n.adj[v] = append(n.adj[v], back)
	n.pair[[2]int{u, v}] = fwd
	n.pair[[2]int{v, u}] = back

	return nil
}

// Capacity returns the total capacity of arc from→to, or 0 if absent.
func (n *Network) Capacity(from, to string) float64 {
	u, ok1 := n.index[from]
	v, ok2 := n.index[to]
	if !ok1 || !ok2 {
		return 0
	}
	if i, ok := n.pair[[2]int{u, v}]; ok {
		return n.arcs[i].cap
	}

	return 0
}

// endpoints validates source and sink and returns their indices.
func (n *Network) endpoints(source, sink string) (int, int, error) {
	s, ok := n.index[source]
	if !ok {
		return 0, 0, ErrSourceNotFound
	}
	t, ok := n.index[sink]
	if !ok {
		return 0, 0, ErrSinkNotFound
	}
	if s == t {
		return 0, 0, ErrSourceIsSink
	}

	return s, t, nil
}

// Residual is the residual network left after a max-flow computation.
type Residual struct {
	net  *Network
	arcs []arc
	eps  float64
}

func newResidual(n *Network, eps float64) *Residual {
	return &Residual{net: n, arcs: append([]arc(nil), n.arcs...), eps: eps}
}

// Capacity returns the remaining capacity of arc from→to.
func (r *Residual) Capacity(from, to string) float64 {
	u, ok1 := r.net.index[from]
	v, ok2 := r.net.index[to]
	if !ok1 || !ok2 {
		return 0
	}
	if i, ok := r.net.pair[[2]int{u, v}]; ok {
		return r.arcs[i].cap
	}

	return 0
}

// Flow returns the net flow pushed along arc from→to, read off the growth of
// the partner arc. It is never negative.
func (r *Residual) Flow(from, to string) float64 {
	u, ok1 := r.net.index[from]
	v, ok2 := r.net.index[to]
	if !ok1 || !ok2 {
		return 0
	}
	i, ok := r.net.pair[[2]int{u, v}]
	if !ok {
		return 0
	}
	rev := r.arcs[i].rev
	f := r.arcs[rev].cap - r.net.arcs[rev].cap
	if f < 0 || math.IsNaN(f) {
		return 0
	}

	return f
}

// Reachable returns the vertices reachable from source through arcs with
// remaining capacity above the run's epsilon. After a max flow this is the
// source side of a minimum cut.
func (r *Residual) Reachable(source string) map[string]bool {
	s, ok := r.net.index[source]
	if !ok {
		return nil
	}
	seen := r.reach(s)
	out := make(map[string]bool, len(seen))
	for i, ok := range seen {
		if ok {
			out[r.net.names[i]] = true
		}
	}

	return out
}

func (r *Residual) reach(s int) []bool {
	seen := make([]bool, len(r.net.names))
	seen[s] = true
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.net.adj[u] {
			if e := r.arcs[a]; e.cap > r.eps && !seen[e.to] {
				seen[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}

	return seen
}
