// Package graphpoet turns a text corpus into a word-affinity graph and uses
// it to weave bridge words into new text.
//
// What is in the box?
//
//	core/    — thread-safe directed weighted graph with insertion-ordered targets
//	poet/    — corpus → affinity graph, maximum-weight two-hop bridge selection
//	corpus/  — corpus files and readers as lines
//	config/  — YAML configuration with validation
//	logging/ — zap logger construction
//	render/  — plain and highlighted poem output
//	cmd/graphpoet — the command-line front end
//
// Quick example:
//
//	corpus: This is a test of the Mugar Omni Theater sound system.
//	input:  Test the system.
//	poem:   Test of the system.
//
// "of" is inserted because test → of → the is a two-edge path in the
// corpus graph; the → system. has no such path, so nothing is added there.
//
//	go install github.com/katalvlaran/graphpoet/cmd/graphpoet@latest
package graphpoet
