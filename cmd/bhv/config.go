package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/treespace/distance"
	"github.com/katalvlaran/treespace/flow"
	"github.com/katalvlaran/treespace/geodesic"
)

// Configuration keys. Flags, the YAML file and BHV_ variables share them.
const (
	keyConfig    = "config"
	keyInput     = "input"
	keyRooted    = "rooted"
	keyNormalize = "normalize"
	keyTolerance = "tolerance"
	keyAlgorithm = "algorithm"
	keyLogLevel  = "log-level"
	keyFormat    = "format"
	keyMetric    = "metric"
	keyPosition  = "position"
	keyWorkers   = "workers"
)

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Input     string  `mapstructure:"input"`
	Rooted    bool    `mapstructure:"rooted"`
	Normalize bool    `mapstructure:"normalize"`
	Tolerance float64 `mapstructure:"tolerance"`
	Algorithm string  `mapstructure:"algorithm"`
	LogLevel  string  `mapstructure:"log-level"`
	Format    string  `mapstructure:"format"`
	Metric    string  `mapstructure:"metric"`
	Position  float64 `mapstructure:"position"`
	Workers   int     `mapstructure:"workers"`
}

// newViper returns a viper instance reading BHV_-prefixed variables, with
// dashes in keys mapped to underscores.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("BHV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional YAML file and decodes every key.
func loadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != formatText && c.Format != formatYAML {
		return Config{}, fmt.Errorf("unknown format %q (want %s or %s)", c.Format, formatText, formatYAML)
	}
	if !(c.Tolerance > 0) {
		return Config{}, fmt.Errorf("%w: got %g", geodesic.ErrBadTolerance, c.Tolerance)
	}

	return c, nil
}

// newLogger builds the stderr text logger at the configured level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// distanceOptions translates c into options for the distance package.
func (c Config) distanceOptions(logger *slog.Logger) ([]distance.Option, error) {
	algo, err := flow.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}
	opts := []distance.Option{
		distance.WithLogger(logger),
		distance.WithGeodesicOptions(
			geodesic.WithTolerance(c.Tolerance),
			geodesic.WithFlowAlgorithm(algo),
		),
	}
	if c.Normalize {
		opts = append(opts, distance.Normalized())
	}

	return opts, nil
}
