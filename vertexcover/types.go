package vertexcover

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/treespace/flow"
)

// Sentinel errors returned by NewGraph and Cover.
var (
	ErrEmptySide = errors.New("vertexcover: ratio has an empty side")
	ErrDimension = errors.New("vertexcover: incidence matrix and weights disagree")
	ErrIndex     = errors.New("vertexcover: vertex index out of range")
)

// DefaultTolerance is the slack under which a cover of weight 1−ε still
// counts as trivial.
const DefaultTolerance = 1e-10

// Options configures the oracle.
//   - Tolerance: covers of weight ≥ 1−Tolerance are trivial; also the
//     residual epsilon of the min-cut run (default DefaultTolerance).
//   - Algorithm: max-flow implementation (default flow.AlgoDinic).
//   - Logger: one Debug record per query (default discards).
type Options struct {
	Tolerance float64
	Algorithm flow.Algorithm
	Logger    *slog.Logger
}

// DefaultOptions returns the options used by the geodesic search.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Algorithm: flow.AlgoDinic,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func (o *Options) normalize() {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Cover is the answer to one oracle query. Index slices hold graph vertex
// indices in the order they were queried.
type Cover struct {
	AIn, AOut []int // A-vertices in / out of the cover
	BIn, BOut []int // B-vertices in / out of the cover
	Weight    float64
	trivial   bool
}

// Trivial reports whether the queried ratio cannot be split.
func (c Cover) Trivial() bool { return c.trivial }
