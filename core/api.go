// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over a whole graph: Stats and Validate.
// Policy:
//   - No mutation here.
//   - Both functions take the read lock once and scan the full catalog.

package core

import "fmt"

// Stats produces a read-only snapshot of vertex/edge counts and weights.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Single pass over all target sets, summing and tracking the max.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
	}
	for _, ts := range g.adjacency {
		for _, w := range ts.weights {
			stats.TotalWeight += w
			if w > stats.MaxWeight {
				stats.MaxWeight = w
			}
		}
	}

	return &stats
}

// Validate checks the representation invariants and reports the first
// violation wrapped in ErrInvariantViolation:
//
//   - every edge weight is ≥ 0;
//   - every edge endpoint is a cataloged vertex;
//   - each target set's order slice and weight map hold the same targets;
//   - the cached edge count matches the stored edges;
//   - vertex order and catalog agree.
//
// A nil result means the graph is consistent. SetEdge never produces a
// violation.
//
// Complexity: O(V+E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.order) != len(g.vertices) {
		return fmt.Errorf("%w: %d ordered vertices, %d cataloged", ErrInvariantViolation, len(g.order), len(g.vertices))
	}
	for _, id := range g.order {
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%w: ordered vertex %q missing from catalog", ErrInvariantViolation, id)
		}
	}

	edges := 0
	for from, ts := range g.adjacency {
		if _, ok := g.vertices[from]; !ok {
			return fmt.Errorf("%w: source %q is not a vertex", ErrInvariantViolation, from)
		}
		if len(ts.keys) != len(ts.weights) {
			return fmt.Errorf("%w: %q has %d ordered targets, %d weighted", ErrInvariantViolation, from, len(ts.keys), len(ts.weights))
		}
		for _, to := range ts.keys {
			w, ok := ts.weights[to]
			if !ok {
				return fmt.Errorf("%w: %q -> %q ordered but unweighted", ErrInvariantViolation, from, to)
			}
			if w < 0 {
				return fmt.Errorf("%w: %q -> %q has negative weight %d", ErrInvariantViolation, from, to, w)
			}
			if _, ok = g.vertices[to]; !ok {
				return fmt.Errorf("%w: target %q is not a vertex", ErrInvariantViolation, to)
			}
		}
		edges += len(ts.keys)
	}
	if edges != g.edgeCount {
		return fmt.Errorf("%w: counted %d edges, cached %d", ErrInvariantViolation, edges, g.edgeCount)
	}

	return nil
}
