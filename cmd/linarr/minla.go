package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/minla"
	"github.com/treemetrics/linarr/treebank"
)

func newMinlaCmd() *cobra.Command {
	var (
		variant      string
		strategyName string
		printArr     bool
	)

	cmd := &cobra.Command{
		Use:   "minla [treebank]",
		Short: "Compute minimum linear arrangements for every tree of a treebank",
		Long: `Reads a head-vector treebank (file or stdin) and prints one
tab-separated line per tree: line number, n, and the minimum sum of edge
lengths under the chosen constraint. With --arrangement the optimal
positions pos[0..n-1] are appended.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solve, err := minlaSolver(variant, strategyName)
			if err != nil {
				return err
			}
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			return runMinla(in, os.Stdout, solve, printArr)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "unconstrained", "constraint: unconstrained|planar|projective")
	cmd.Flags().StringVar(&strategyName, "strategy", "shiloach", "unconstrained procedure: shiloach|chung")
	cmd.Flags().BoolVar(&printArr, "arrangement", false, "also print the optimal positions")
	return cmd
}

type solveFunc func(rt *core.RootedTree) (uint64, *core.Arrangement, error)

func minlaSolver(variant, strategyName string) (solveFunc, error) {
	var strategy minla.Strategy
	switch strategyName {
	case "shiloach":
		strategy = minla.Shiloach
	case "chung":
		strategy = minla.Chung
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategyName)
	}

	switch variant {
	case "unconstrained":
		return func(rt *core.RootedTree) (uint64, *core.Arrangement, error) {
			ft, err := rt.ToFreeTree()
			if err != nil {
				return 0, nil, err
			}
			return minla.Unconstrained(ft, minla.WithStrategy(strategy))
		}, nil
	case "planar":
		return func(rt *core.RootedTree) (uint64, *core.Arrangement, error) {
			ft, err := rt.ToFreeTree()
			if err != nil {
				return 0, nil, err
			}
			return minla.Planar(ft)
		}, nil
	case "projective":
		return func(rt *core.RootedTree) (uint64, *core.Arrangement, error) {
			return minla.Projective(rt)
		}, nil
	}
	return nil, fmt.Errorf("unknown variant %q", variant)
}

func runMinla(in io.Reader, out io.Writer, solve solveFunc, printArr bool) error {
	tr := treebank.NewTreeReader(in)
	for {
		rt, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, treebank.ErrEmptyLine) {
			continue
		}
		if err != nil {
			logger.Warn("skipping malformed tree", "err", err)
			continue
		}

		cost, arr, err := solve(rt)
		if err != nil {
			return err
		}
		if printArr {
			fmt.Fprintf(out, "%d\t%d\t%d\t%s\n", tr.Line(), rt.NumVertices(), cost, formatPositions(arr))
		} else {
			fmt.Fprintf(out, "%d\t%d\t%d\n", tr.Line(), rt.NumVertices(), cost)
		}
	}

	logger.Info("done", "trees", tr.NumTrees())
	return nil
}

func formatPositions(arr *core.Arrangement) string {
	pos := arr.Positions()
	ss := make([]string, len(pos))
	for i, p := range pos {
		ss[i] = strconv.Itoa(p)
	}
	return strings.Join(ss, " ")
}
