// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone preserves vertex insertion order and per-source target order.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: normalizer, vertices, edges and
// enumeration order. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithNormalizer(g.normalize))
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for from, ts := range g.adjacency {
		cp := &targetSet{
			keys:    make([]string, len(ts.keys)),
			weights: make(map[string]int64, len(ts.weights)),
		}
		copy(cp.keys, ts.keys)
		for to, w := range ts.weights {
			cp.weights[to] = w
		}
		clone.adjacency[from] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}
