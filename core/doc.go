// Package core provides a small, thread-safe, directed weighted graph over
// string vertices, built for word-affinity counting.
//
// The Graph G = (V,E) has these rules:
//
//   - Vertex labels are normalized on the way in (lower case by default,
//     see WithNormalizer); lookups normalize the same way.
//   - Vertices exist only as edge endpoints. There is no vertex-only
//     insertion and no removal of any kind.
//   - At most one edge per ordered pair (from,to). SetEdge overwrites.
//   - Weights are int64 and never negative (ErrNegativeWeight).
//   - Absence of an edge differs from an edge of weight 0 (HasEdge).
//
// Deterministic iteration:
//
//	Targets(v)  – outgoing edges in first-insertion order of the target
//	Edges()     – sources in vertex insertion order, then Targets order
//	Vertices()  – sorted ascending
//	String()    – insertion order, stable for one insertion history
//
// Core methods:
//
//	SetEdge(from, to string, w int64) (prev int64, err error) // O(1)
//	Weight(from, to string) (int64, bool)                       // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	Targets(from string) []Edge                                 // O(d)
//	TargetWeights(from string) map[string]int64                 // O(d)
//	Edges() []Edge                                              // O(V+E)
//	Vertices() []string                                         // O(V·log V)
//	VertexCount(), EdgeCount() int                              // O(1)
//	Stats() *GraphStats                                         // O(V+E)
//	Validate() error                                            // O(V+E)
//	Clone() *Graph                                              // O(V+E)
//
// Nothing returned by a query aliases internal storage: slices and maps are
// fresh copies and Edge is a value type.
//
// Errors:
//
//	ErrEmptyVertexID      – an endpoint normalized to ""
//	ErrNegativeWeight     – SetEdge with weight < 0
//	ErrInvariantViolation – Validate found an inconsistent representation
package core
