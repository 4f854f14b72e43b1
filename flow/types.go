package flow

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrSourceIsSink is returned when source and sink coincide.
var ErrSourceIsSink = errors.New("flow: source and sink are the same vertex")

// ErrUnknownAlgorithm is returned for an Algorithm outside the known set.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %q→%q: %g", e.From, e.To, e.Cap)
}

// Algorithm selects a max-flow implementation.
type Algorithm int

const (
	// AlgoDinic selects Dinic's algorithm.
	AlgoDinic Algorithm = iota
	// AlgoEdmondsKarp selects the Edmonds–Karp algorithm.
	AlgoEdmondsKarp
)

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case AlgoDinic:
		return "dinic"
	case AlgoEdmondsKarp:
		return "edmonds-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a configuration name ("dinic", "edmonds-karp") to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dinic", "":
		return AlgoDinic, nil
	case "edmonds-karp", "edmondskarp", "ek":
		return AlgoEdmondsKarp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Options configures all max-flow algorithms.
//   - Epsilon: residual capacities ≤ Epsilon count as saturated (default 1e-9).
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N augmentations.
//   - Logger: receives one Debug record per augmentation (default discards).
type Options struct {
	Epsilon              float64
	LevelRebuildInterval int
	Logger               *slog.Logger
}

const defaultEpsilon = 1e-9

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Epsilon: defaultEpsilon,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}
