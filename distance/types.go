package distance

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/treespace/geodesic"
	"github.com/katalvlaran/treespace/phylo"
)

// Sentinel errors. The first two are the underlying package errors, so
// errors.Is works against either name.
var (
	// ErrLeafMismatch indicates two trees with different leaf sequences.
	ErrLeafMismatch = phylo.ErrLeafMismatch

	// ErrPositionOutOfRange indicates an interpolation position outside [0,1].
	ErrPositionOutOfRange = geodesic.ErrPositionOutOfRange

	// ErrUnknownMetric indicates a Metric value or name with no implementation.
	ErrUnknownMetric = errors.New("distance: unknown metric")
)

// Metric selects a tree comparison measure.
type Metric int

const (
	// MetricGeodesic is the BHV geodesic distance.
	MetricGeodesic Metric = iota
	// MetricEuclidean is the split-space Euclidean distance.
	MetricEuclidean
	// MetricRobinsonFoulds counts splits found in one tree only.
	MetricRobinsonFoulds
	// MetricWeightedRobinsonFoulds sums attribute differences.
	MetricWeightedRobinsonFoulds
)

var metricNames = map[Metric]string{
	MetricGeodesic:               "geodesic",
	MetricEuclidean:              "euclidean",
	MetricRobinsonFoulds:         "rf",
	MetricWeightedRobinsonFoulds: "wrf",
}

// String returns the canonical short name of m.
func (m Metric) String() string {
	if s, ok := metricNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a name to a Metric. Matching is case-insensitive and
// accepts the long forms "bhv", "robinson-foulds" and "weighted-rf".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "geodesic", "bhv":
		return MetricGeodesic, nil
	case "euclidean":
		return MetricEuclidean, nil
	case "rf", "robinson-foulds":
		return MetricRobinsonFoulds, nil
	case "wrf", "weighted-rf", "weighted-robinson-foulds":
		return MetricWeightedRobinsonFoulds, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Options configures the comparisons.
//
// Normalize – scale each pair by the sum of their distances from the origin.
// Geodesic  – options passed through to the geodesic computations.
// Logger    – Debug-level trace of Matrix progress. Default discards.
type Options struct {
	Normalize bool
	Geodesic  []geodesic.Option
	Logger    *slog.Logger
}

// Option represents a functional option for the comparisons.
type Option func(*Options)

// Normalized compares normalised copies of the trees.
func Normalized() Option {
	return func(o *Options) {
		o.Normalize = true
	}
}

// WithGeodesicOptions appends options for the geodesic computations.
func WithGeodesicOptions(opts ...geodesic.Option) Option {
	return func(o *Options) {
		o.Geodesic = append(o.Geodesic, opts...)
	}
}

// WithLogger routes the Debug trace to l, including the geodesic trace.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	} else {
		o.Geodesic = append([]geodesic.Option{geodesic.WithLogger(o.Logger)}, o.Geodesic...)
	}

	return o
}
