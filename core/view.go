// File: view.go
// Role: Human-readable textual view of a graph for logs and tests.
// Determinism:
//   - Output follows vertex insertion order, then target insertion order,
//     so one insertion history always renders the same text.

package core

import (
	"strconv"
	"strings"
)

// String renders the graph as
//
//	vertices=[a b c] edges=[a -> b (2), b -> c (1)]
//
// Vertices appear in insertion order. The format is for people; do not parse it.
// Complexity: O(V + E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("vertices=[")
	sb.WriteString(strings.Join(g.order, " "))
	sb.WriteString("] edges=[")

	first := true
	for _, from := range g.order {
		ts := g.adjacency[from]
		if ts == nil {
			continue
		}
		for _, to := range ts.keys {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(from)
			sb.WriteString(" -> ")
			sb.WriteString(to)
			sb.WriteString(" (")
			sb.WriteString(strconv.FormatInt(ts.weights[to], 10))
			sb.WriteByte(')')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
