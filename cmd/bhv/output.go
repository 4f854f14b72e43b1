package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type distResult struct {
	Metric   string  `yaml:"metric"`
	Distance float64 `yaml:"distance"`
}

type pointResult struct {
	Position float64 `yaml:"position"`
	Tree     string  `yaml:"tree"`
}

type matrixResult struct {
	Metric string      `yaml:"metric"`
	Matrix [][]float64 `yaml:"matrix"`
}

// render writes v in the configured format.
func (a *app) render(v any) error {
	if a.cfg.Format == formatYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}

	var text string
	switch r := v.(type) {
	case distResult:
		text = formatFloat(r.Distance)
	case pointResult:
		text = r.Tree
	case matrixResult:
		rows := make([]string, len(r.Matrix))
		for i, row := range r.Matrix {
			cells := make([]string, len(row))
			for j, d := range row {
				cells[j] = formatFloat(d)
			}
			rows[i] = strings.Join(cells, "\t")
		}
		text = strings.Join(rows, "\n")
	default:
		return fmt.Errorf("no text form for %T", v)
	}
	_, err := fmt.Fprintln(a.out, text)

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
