package geodesic

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/treespace/flow"
	"github.com/katalvlaran/treespace/vertexcover"
)

// Sentinel errors returned by the geodesic computations.
var (
	// ErrPositionOutOfRange indicates an interpolation position outside [0,1].
	ErrPositionOutOfRange = errors.New("geodesic: position must lie in [0,1]")

	// ErrInvariant indicates that decomposition produced a subtree pair the
	// ratio search cannot accept. It signals a bug, not bad input.
	ErrInvariant = errors.New("geodesic: internal invariant violated")

	// ErrBadTolerance indicates a non-positive tolerance passed to WithTolerance.
	ErrBadTolerance = errors.New("geodesic: tolerance must be positive")
)

// Options configures Compute, ComputeNoCommonEdges and TreeAt.
//
// Tolerance – slack of the vertex-cover triviality test and min-cut epsilon.
//
//	Must be > 0. Default is vertexcover.DefaultTolerance.
//
// Algorithm – max-flow implementation behind the oracle. Default flow.AlgoDinic.
// Logger    – Debug-level trace of decomposition and ratio splitting.
//
//	Default discards.
type Options struct {
	Tolerance float64
	Algorithm flow.Algorithm
	Logger    *slog.Logger
}

// Option represents a functional option for the geodesic computations.
type Option func(*Options)

// WithTolerance sets the oracle tolerance. Non-positive values panic.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithFlowAlgorithm selects the max-flow implementation used by the oracle.
func WithFlowAlgorithm(a flow.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithLogger routes the Debug trace to l. A nil logger restores the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Tolerance: vertexcover.DefaultTolerance,
		Algorithm: flow.AlgoDinic,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}

func (o Options) oracle() vertexcover.Options {
	return vertexcover.Options{
		Tolerance: o.Tolerance,
		Algorithm: o.Algorithm,
		Logger:    o.Logger,
	}
}
