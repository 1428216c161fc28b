package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treemetrics/linarr/linarr"
)

func TestRunMetrics(t *testing.T) {
	// P5 written in order: D = 4, C = 0, MDD = 1
	in := strings.NewReader("0 1 2 3 4\n\n0 0\n")
	var out bytes.Buffer
	require.NoError(t, runMetrics(in, &out, linarr.Stack))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2, "header plus one tree, malformed line skipped")
	assert.Equal(t, "line\tn\tD\tC\tMDD", lines[0])
	assert.Equal(t, "1\t5\t4\t0\t1", lines[1])
}

func TestRunMinla(t *testing.T) {
	solve, err := minlaSolver("unconstrained", "shiloach")
	require.NoError(t, err)

	in := strings.NewReader("0 1 2 3 4\n")
	var out bytes.Buffer
	require.NoError(t, runMinla(in, &out, solve, false))
	assert.Equal(t, "1\t5\t4\n", out.String())

	_, err = minlaSolver("bogus", "shiloach")
	assert.Error(t, err)
	_, err = minlaSolver("planar", "bogus")
	assert.Error(t, err)
}

func TestCrossingsAlgorithmFlag(t *testing.T) {
	for name, want := range map[string]linarr.Algorithm{
		"stack": linarr.Stack, "brute": linarr.Brute, "dp": linarr.DP, "ladder": linarr.Ladder,
	} {
		got, err := crossingsAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := crossingsAlgorithm("quantum")
	assert.Error(t, err)
}
