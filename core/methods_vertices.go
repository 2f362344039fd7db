// File: methods_vertices.go
// Role: Vertex catalog queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Catalog protected by mu; addVertexLocked expects the write lock held.
package core

import "sort"

// HasVertex reports whether the (normalized) vertex ID exists.
// Empty IDs are never present.
func (g *Graph) HasVertex(id string) bool {
	id = g.normalize(id)
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// addVertexLocked registers id if missing. Caller holds mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
}
