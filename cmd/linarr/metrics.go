package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/linarr"
	"github.com/treemetrics/linarr/treebank"
)

func crossingsAlgorithm(name string) (linarr.Algorithm, error) {
	switch name {
	case "stack":
		return linarr.Stack, nil
	case "brute":
		return linarr.Brute, nil
	case "dp":
		return linarr.DP, nil
	case "ladder":
		return linarr.Ladder, nil
	}
	return 0, fmt.Errorf("unknown crossings algorithm %q", name)
}

func newMetricsCmd() *cobra.Command {
	var algoName string

	cmd := &cobra.Command{
		Use:   "metrics [treebank]",
		Short: "Compute D, C and MDD for every tree of a head-vector treebank",
		Long: `Reads a head-vector treebank (file or stdin), takes each sentence in
its written order as the linear arrangement, and prints one tab-separated
line per tree: line number, n, sum of edge lengths D, number of edge
crossings C, and mean dependency distance.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := crossingsAlgorithm(algoName)
			if err != nil {
				return err
			}
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			return runMetrics(in, os.Stdout, algo)
		},
	}
	cmd.Flags().StringVar(&algoName, "algorithm", "stack", "crossings algorithm: stack|brute|dp|ladder")
	return cmd
}

func runMetrics(in io.Reader, out io.Writer, algo linarr.Algorithm) error {
	fmt.Fprintln(out, "line\tn\tD\tC\tMDD")

	tr := treebank.NewTreeReader(in)
	for {
		rt, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, treebank.ErrEmptyLine) {
			logger.Debug("empty line", "line", tr.Line())
			continue
		}
		if err != nil {
			logger.Warn("skipping malformed tree", "err", err)
			continue
		}

		arr := core.Identity(rt.NumVertices())
		d, err := linarr.SumEdgeLengths(rt, arr)
		if err != nil {
			return err
		}
		c, err := linarr.Crossings(rt, arr, linarr.WithAlgorithm(algo))
		if err != nil {
			return err
		}
		mdd := "-"
		if m, err := linarr.MeanDependencyDistance(rt, arr); err == nil {
			mdd = m.String()
		}
		fmt.Fprintf(out, "%d\t%d\t%d\t%d\t%s\n", tr.Line(), rt.NumVertices(), d, c, mdd)
	}

	logger.Info("done", "trees", tr.NumTrees())
	return nil
}
