// File: methods_edges.go
// Role: Edge mutation & queries: SetEdge/Weight/HasEdge/Targets/TargetWeights/Edges/EdgeCount.
// Determinism:
//   - Targets() enumerates in first-insertion order of the target.
//   - Edges() enumerates sources in vertex insertion order, then targets in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// SetEdge creates or overwrites the directed edge from→to with weight and
// returns the weight the edge had before the call (0 if it did not exist).
//
// Implementation:
//   - Stage 1: Reject negative weights (ErrNegativeWeight) before touching state.
//   - Stage 2: Normalize both endpoints; reject empty labels (ErrEmptyVertexID).
//   - Stage 3: Under the write lock, register missing endpoints, then
//     overwrite or append the target in the source's ordered target set.
//
// Behavior highlights:
//   - Overwrite keeps the target's original enumeration position.
//   - Accumulation is the caller's job; SetEdge never adds to an old weight.
//
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(from, to string, weight int64) (int64, error) {
	if weight < 0 {
		return 0, fmt.Errorf("SetEdge(%q, %q, %d): %w", from, to, weight, ErrNegativeWeight)
	}
	from, to = g.normalize(from), g.normalize(to)
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	ts := g.adjacency[from]
	if ts == nil {
		ts = &targetSet{weights: make(map[string]int64)}
		g.adjacency[from] = ts
	}

	prev, exists := ts.weights[to]
	if !exists {
		ts.keys = append(ts.keys, to)
		g.edgeCount++
	}
	ts.weights[to] = weight

	return prev, nil
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	from, to = g.normalize(from), g.normalize(to)

	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := g.adjacency[from]
	if ts == nil {
		return 0, false
	}
	w, ok := ts.weights[to]

	return w, ok
}

// HasEdge reports whether the edge from→to exists.
// An edge of weight 0 exists; a never-set pair does not.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// Targets returns the outgoing edges of from, in first-insertion order of
// the target. The slice is freshly allocated; unknown vertices yield nil.
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph) Targets(from string) []Edge {
	from = g.normalize(from)

	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := g.adjacency[from]
	if ts == nil {
		return nil
	}
	out := make([]Edge, 0, len(ts.keys))
	for _, to := range ts.keys {
		out = append(out, Edge{From: from, To: to, Weight: ts.weights[to]})
	}

	return out
}

// TargetWeights returns the outgoing edges of from as an independent
// target→weight map. The map is never nil.
func (g *Graph) TargetWeights(from string) map[string]int64 {
	from = g.normalize(from)

	g.mu.RLock()
	defer g.mu.RUnlock()

	ts := g.adjacency[from]
	if ts == nil {
		return map[string]int64{}
	}
	out := make(map[string]int64, len(ts.weights))
	for to, w := range ts.weights {
		out[to] = w
	}

	return out
}

// Edges returns every edge. Sources follow vertex insertion order and the
// targets of each source follow Targets order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, from := range g.order {
		ts := g.adjacency[from]
		if ts == nil {
			continue
		}
		for _, to := range ts.keys {
			out = append(out, Edge{From: from, To: to, Weight: ts.weights[to]})
		}
	}

	return out
}

// EdgeCount returns the number of distinct ordered pairs with an edge. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
