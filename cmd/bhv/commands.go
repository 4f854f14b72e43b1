package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/treespace/distance"
	"github.com/katalvlaran/treespace/phylo"
	"github.com/katalvlaran/treespace/vertexcover"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg    Config
	logger *slog.Logger
}

// newRootCmd assembles the command tree over the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{v: newViper(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "bhv",
		Short:         "Geodesic distances between phylogenetic trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "YAML configuration file")
	pf.StringP(keyInput, "i", "", `file with one Newick tree per line ("-" for stdin)`)
	pf.Bool(keyRooted, false, "treat trees as rooted")
	pf.Bool(keyNormalize, false, "scale each pair by the sum of their distances from the origin")
	pf.Float64(keyTolerance, vertexcover.DefaultTolerance, "vertex-cover tolerance")
	pf.String(keyAlgorithm, "dinic", "max-flow algorithm (dinic, edmonds-karp)")
	pf.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")
	pf.StringP(keyFormat, "o", formatText, "output format (text, yaml)")

	root.AddCommand(a.distCmd(), a.pointCmd(), a.matrixCmd())

	return root
}

// setup binds the executing command's flags and resolves the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, a.errOut)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("metric", cfg.Metric),
		slog.String("algorithm", cfg.Algorithm),
		slog.Bool("rooted", cfg.Rooted))

	return nil
}

func (a *app) distCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist [TREE_A TREE_B]",
		Short: "Distance between two trees",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := a.trees(args, 2)
			if err != nil {
				return err
			}
			metric, err := distance.ParseMetric(a.cfg.Metric)
			if err != nil {
				return err
			}
			opts, err := a.cfg.distanceOptions(a.logger)
			if err != nil {
				return err
			}
			d, err := distance.Compute(cmd.Context(), metric, trees[0], trees[1], opts...)
			if err != nil {
				return err
			}

			return a.render(distResult{Metric: metric.String(), Distance: d})
		},
	}
	cmd.Flags().StringP(keyMetric, "m", "geodesic", "metric (geodesic, euclidean, rf, wrf)")

	return cmd
}

func (a *app) pointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point [TREE_A TREE_B]",
		Short: "Tree at a position along the geodesic",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := a.trees(args, 2)
			if err != nil {
				return err
			}
			opts, err := a.cfg.distanceOptions(a.logger)
			if err != nil {
				return err
			}
			t, err := distance.PointOnGeodesic(cmd.Context(), trees[0], trees[1], a.cfg.Position, opts...)
			if err != nil {
				return err
			}

			return a.render(pointResult{Position: a.cfg.Position, Tree: t.Newick(true)})
		},
	}
	cmd.Flags().Float64P(keyPosition, "p", 0.5, "position along the geodesic, in [0,1]")

	return cmd
}

func (a *app) matrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix [TREE...]",
		Short: "Pairwise distances between trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := a.trees(args, -1)
			if err != nil {
				return err
			}
			metric, err := distance.ParseMetric(a.cfg.Metric)
			if err != nil {
				return err
			}
			opts, err := a.cfg.distanceOptions(a.logger)
			if err != nil {
				return err
			}
			m, err := distance.Matrix(cmd.Context(), trees, metric, a.cfg.Workers, opts...)
			if err != nil {
				return err
			}

			return a.render(matrixResult{Metric: metric.String(), Matrix: m})
		},
	}
	cmd.Flags().StringP(keyMetric, "m", "geodesic", "metric (geodesic, euclidean, rf, wrf)")
	cmd.Flags().IntP(keyWorkers, "w", 0, "parallel pair computations (0 = GOMAXPROCS)")

	return cmd
}

// trees parses the positional Newick arguments, or the --input lines when
// there are none. want < 0 accepts any count.
func (a *app) trees(args []string, want int) ([]*phylo.Tree, error) {
	texts := args
	if len(texts) == 0 {
		var err error
		if texts, err = a.readInput(); err != nil {
			return nil, err
		}
	}
	if want >= 0 && len(texts) != want {
		return nil, fmt.Errorf("need %d trees, got %d", want, len(texts))
	}

	out := make([]*phylo.Tree, len(texts))
	for i, s := range texts {
		t, err := phylo.Parse(s, a.cfg.Rooted)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i+1, err)
		}
		out[i] = t
	}
	a.logger.Debug("trees parsed", slog.Int("count", len(out)))

	return out, nil
}

// readInput returns the non-blank, non-comment lines of --input.
func (a *app) readInput() ([]string, error) {
	var r io.Reader
	switch a.cfg.Input {
	case "":
		return nil, fmt.Errorf("no trees given: pass them as arguments or with --%s", keyInput)
	case "-":
		r = a.in
	default:
		f, err := os.Open(a.cfg.Input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", a.cfg.Input, err)
	}

	return lines, nil
}

// run executes the command tree with args; it is the test entry point.
func run(ctx context.Context, root *cobra.Command, args ...string) error {
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
