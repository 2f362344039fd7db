// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
//
// Purpose:
//   - Keep vertex labels and weights as named constants (no magic values).
//   - Provide small graph builders reused across test files.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphpoet/core"
	"github.com/stretchr/testify/require"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "a"
	VertexB = "b"
	VertexC = "c"
	VertexD = "d"

	VertexX = "x"
	VertexY = "y"

	VertexHub = "hub"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight5 = 5
	Weight9 = 9
)

// Common concurrency sizes.
const (
	NReaders = 50
	NCloners = 20
	NLeaves  = 200
)

// mustSet calls SetEdge and fails the test on error, returning the previous weight.
func mustSet(t *testing.T, g *core.Graph, from, to string, w int64) int64 {
	t.Helper()

	prev, err := g.SetEdge(from, to, w)
	require.NoError(t, err, "SetEdge(%q,%q,%d)", from, to, w)

	return prev
}

// newDiamond builds a → b → d and a → c → d with the given weights:
//
//	    b
//	  /   \
//	a       d
//	  \   /
//	    c
func newDiamond(t *testing.T, ab, bd, ac, cd int64) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	mustSet(t, g, VertexA, VertexB, ab)
	mustSet(t, g, VertexB, VertexD, bd)
	mustSet(t, g, VertexA, VertexC, ac)
	mustSet(t, g, VertexC, VertexD, cd)

	return g
}

// targetIDs projects Targets(from) to target labels, preserving order.
func targetIDs(g *core.Graph, from string) []string {
	edges := g.Targets(from)
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.To)
	}

	return ids
}
