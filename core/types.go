// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphStats, GraphOption, sentinel errors and NewGraph.
// Concurrency:
//   - A single sync.RWMutex (mu) guards the vertex catalog and adjacency.
// Determinism:
//   - Vertex insertion order and per-source target insertion order are
//     recorded explicitly; map iteration order never leaks into results.

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an edge endpoint normalized to the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an attempt to store a weight below zero.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrInvariantViolation indicates the graph representation is inconsistent.
	// It is unreachable through the exported API.
	ErrInvariantViolation = errors.New("core: invariant violation")
)

// Edge is a value snapshot of a directed edge From→To.
//
// Edges returned by Graph methods are copies; mutating them has no effect
// on the graph.
type Edge struct {
	// From is the normalized source vertex ID.
	From string

	// To is the normalized target vertex ID.
	To string

	// Weight is the non-negative weight of the edge.
	Weight int64
}

// GraphStats is a read-only summary of a graph's size and weights.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	TotalWeight int64 // sum over all edges
	MaxWeight   int64 // heaviest single edge, 0 for an empty graph
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNormalizer replaces the vertex label normalizer (strings.ToLower by default).
// A nil fn is ignored.
func WithNormalizer(fn func(string) string) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.normalize = fn
		}
	}
}

// targetSet holds the outgoing edges of one vertex.
// keys records first-insertion order of targets; weights holds the values.
type targetSet struct {
	keys    []string
	weights map[string]int64
}

// Graph is a directed graph over string vertices with non-negative int64
// edge weights and at most one edge per ordered pair.
//
// Vertices come into existence only as endpoints of SetEdge; there is no
// removal. Outgoing edges of a vertex enumerate in the order their targets
// were first attached, which makes "first maximum wins" selections over
// Targets reproducible across runs.
type Graph struct {
	mu sync.RWMutex // guards every field below

	normalize func(string) string

	order     []string              // vertex IDs in insertion order
	vertices  map[string]struct{}   // vertex catalog
	adjacency map[string]*targetSet // from → outgoing edges
	edgeCount int                   // number of (from,to) pairs
}

// NewGraph creates an empty Graph. Vertex labels are lower-cased unless
// WithNormalizer says otherwise.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		normalize: strings.ToLower,
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]*targetSet),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
