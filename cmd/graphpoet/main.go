// Command graphpoet builds a word-affinity graph from a corpus file and
// inserts bridge words into input text.
//
//	graphpoet --corpus mugar.txt poem Test the system.
//	echo "Test the system." | graphpoet --config graphpoet.yaml poem --highlight
//	graphpoet --corpus mugar.txt bridge test the
//	graphpoet --corpus mugar.txt graph
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
