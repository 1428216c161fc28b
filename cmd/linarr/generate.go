package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/generate"
	"github.com/treemetrics/linarr/treebank"
)

func newGenerateCmd() *cobra.Command {
	var (
		class string
		n     int
		count int
		seed  uint64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate trees and print them as a head-vector treebank",
		Long: `Generates trees of the chosen class on n vertices and writes them to
stdout as head vectors, one tree per line. Free trees are rooted at
vertex 0 for encoding. With --all the class is enumerated exhaustively
(ignoring --count and --seed); otherwise --count uniform samples are
drawn. Seed 0 draws OS entropy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("invalid tree size %d", n)
			}
			tw := treebank.NewTreeWriter(os.Stdout)
			var err error
			if all {
				err = enumerateTrees(tw, class, n)
			} else {
				err = sampleTrees(tw, class, n, count, seed)
			}
			if err != nil {
				return err
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			logger.Info("done", "trees", tw.NumTrees())
			return nil
		},
	}
	cmd.Flags().StringVar(&class, "class", "unlabelled-free", "tree class: labelled-free|labelled-rooted|unlabelled-free|unlabelled-rooted")
	cmd.Flags().IntVarP(&n, "vertices", "n", 10, "number of vertices")
	cmd.Flags().IntVar(&count, "count", 1, "number of trees to sample")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = OS entropy)")
	cmd.Flags().BoolVar(&all, "all", false, "enumerate the class exhaustively")
	return cmd
}

func writeFree(tw *treebank.TreeWriter, ft *core.FreeTree) error {
	if ft.NumVertices() == 0 {
		return tw.Write(core.NewRootedTree(0, 0))
	}
	rt, err := ft.ToRooted(0)
	if err != nil {
		return err
	}
	return tw.Write(rt)
}

func enumerateTrees(tw *treebank.TreeWriter, class string, n int) error {
	switch class {
	case "labelled-free":
		g, err := generate.NewAllLabelledFree(n)
		if err != nil {
			return err
		}
		for !g.End() {
			ft, err := g.YieldTree()
			if err != nil {
				return err
			}
			if err := writeFree(tw, ft); err != nil {
				return err
			}
		}
	case "labelled-rooted":
		g, err := generate.NewAllLabelledRooted(n)
		if err != nil {
			return err
		}
		for !g.End() {
			rt, err := g.YieldTree()
			if err != nil {
				return err
			}
			if err := tw.Write(rt); err != nil {
				return err
			}
		}
	case "unlabelled-free":
		g, err := generate.NewAllUnlabelledFree(n)
		if err != nil {
			return err
		}
		for !g.End() {
			ft, err := g.YieldTree()
			if err != nil {
				return err
			}
			if err := writeFree(tw, ft); err != nil {
				return err
			}
		}
	case "unlabelled-rooted":
		g, err := generate.NewAllUnlabelledRooted(n)
		if err != nil {
			return err
		}
		for !g.End() {
			rt, err := g.YieldTree()
			if err != nil {
				return err
			}
			if err := tw.Write(rt); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown tree class %q", class)
	}
	return nil
}

func sampleTrees(tw *treebank.TreeWriter, class string, n, count int, seed uint64) error {
	switch class {
	case "labelled-free":
		g, err := generate.NewRandLabelledFree(n, seed)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			ft, err := g.Tree()
			if err != nil {
				return err
			}
			if err := writeFree(tw, ft); err != nil {
				return err
			}
		}
	case "labelled-rooted":
		g, err := generate.NewRandLabelledRooted(n, seed)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			rt, err := g.Tree()
			if err != nil {
				return err
			}
			if err := tw.Write(rt); err != nil {
				return err
			}
		}
	case "unlabelled-free":
		g, err := generate.NewRandUnlabelledFree(n, seed)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			ft, err := g.Tree()
			if err != nil {
				return err
			}
			if err := writeFree(tw, ft); err != nil {
				return err
			}
		}
	case "unlabelled-rooted":
		g, err := generate.NewRandUnlabelledRooted(n, seed)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			rt, err := g.Tree()
			if err != nil {
				return err
			}
			if err := tw.Write(rt); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown tree class %q", class)
	}
	return nil
}
