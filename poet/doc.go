// Package poet builds a word-affinity graph from a corpus and uses it to
// expand input text with bridge words.
//
// Affinity graph:
//
//	The corpus is lower-cased and split on runs of whitespace. Every word
//	is a vertex, and the edge w1 → w2 carries the number of times w2
//	directly follows w1. For the corpus
//
//	    Hello, HELLO, hello, goodbye!
//
//	the graph holds "hello," → "hello," (2) and "hello," → "goodbye!" (1).
//
// Bridge words:
//
//	For each adjacent input pair (a, b), a bridge is a word c with edges
//	a → c and c → b (compared case-insensitively). The bridge with the
//	largest w(a,c)+w(c,b) is inserted between a and b; on ties the first
//	candidate in core.Graph.Targets(a) order wins. Pairs without a two-hop
//	path are left adjacent.
//
//	Corpus: This is a test of the Mugar Omni Theater sound system.
//	Input:  Test the system.
//	Poem:   Test of the system.
//
// Input words keep their casing; bridge words are lower case. Output
// words are joined by single spaces.
//
// A Poet is immutable after construction, so Poem, Compose and Bridge may
// be called from any number of goroutines.
//
// Errors:
//
//	ErrCorpusUnreadable   – the corpus source failed (file or reader)
//	ErrInvariantViolation – the built graph failed core.Graph.Validate
package poet
