// File: corpus.go
// Role: Corpus sources (file path or io.Reader) to lines.
// Determinism:
//   - Lines come back in source order; blank lines are kept.
// Limits:
//   - No per-line cap; a corpus that is one huge line reads like any other.

// Package corpus reads corpus text as lines from files or readers.
//
// Lines keep their content verbatim; only the line terminators are
// dropped ("\n" and a trailing "\r" before it). Tokenizing is left to the
// consumer.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnreadable indicates the corpus could not be opened or read.
var ErrUnreadable = errors.New("corpus: unreadable")

// Load reads the file at path and returns its lines.
// Missing files, permission problems and read failures wrap ErrUnreadable.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}

	return lines, nil
}

// Read returns the lines of r. A final line without a terminator is kept.
// An empty reader yields an empty, non-nil slice.
func Read(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	lines := make([]string, 0, 16)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
	}
}
