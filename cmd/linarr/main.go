// Command linarr computes linear-arrangement metrics, minimum linear
// arrangements and random or exhaustive tree collections from the
// command line. Trees are exchanged in the head-vector treebank
// format, one tree per line, on stdin/stdout or named files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
