// Command bhv compares phylogenetic trees in BHV tree space.
//
// Usage:
//
//	bhv dist   [flags] TREE_A TREE_B
//	bhv point  [flags] --position P TREE_A TREE_B
//	bhv matrix [flags] --input FILE
//
// Trees are Newick strings. When no tree argument is given they are read
// from --input, one per line ("-" reads standard input). Every flag can also
// come from a YAML file given by --config or from BHV_-prefixed environment
// variables (BHV_LOG_LEVEL, BHV_METRIC, ...).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bhv:", err)
		os.Exit(1)
	}
}
