// File: poet.go
// Role: Poet construction from lines, text, readers and files; graph access.
// Determinism:
//   - Word pairs are counted in corpus order, so target order is the order
//     in which each follower first appears.
// Concurrency:
//   - A Poet is read-only after construction; Graph hands out a clone.

package poet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/core"
	"github.com/katalvlaran/graphpoet/corpus"
)

// Sentinel errors returned by the constructors.
var (
	// ErrCorpusUnreadable indicates the corpus file or reader could not be read.
	// No Poet is returned alongside it.
	ErrCorpusUnreadable = errors.New("poet: corpus unreadable")

	// ErrInvariantViolation is core.ErrInvariantViolation.
	ErrInvariantViolation = core.ErrInvariantViolation
)

// displayPrefix opens the diagnostic String form.
const displayPrefix = "GraphPoet with graph: "

// Option configures a Poet at construction time.
type Option func(p *Poet)

// WithLogger attaches a logger. Construction summaries and bridge choices
// are logged at debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *Poet) {
		if l != nil {
			p.logger = l
		}
	}
}

// Poet owns a word-affinity graph built from one corpus and composes poems
// from it. The graph is never mutated after construction and never handed
// out by reference.
type Poet struct {
	graph  *core.Graph
	logger *zap.Logger
	words  int // corpus word count
}

// New builds a Poet from corpus lines. Lines are joined with a single space,
// so words never run together across line breaks.
func New(lines []string, opts ...Option) (*Poet, error) {
	return NewFromText(strings.Join(lines, " "), opts...)
}

// NewFromText builds a Poet from a corpus held in one string.
//
// Steps:
//  1. Lower-case the text and split it on runs of whitespace.
//  2. For every consecutive pair (w[i], w[i+1]) add 1 to the edge weight.
//  3. Validate the graph; a failure wraps ErrInvariantViolation.
//
// A corpus of zero or one words yields an empty graph.
// Complexity: O(n) in the number of corpus words.
func NewFromText(text string, opts ...Option) (*Poet, error) {
	p := &Poet{
		graph:  core.NewGraph(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	words := splitWords(strings.ToLower(text))
	p.words = len(words)
	for i := 0; i+1 < len(words); i++ {
		current, _ := p.graph.Weight(words[i], words[i+1])
		if _, err := p.graph.SetEdge(words[i], words[i+1], current+1); err != nil {
			return nil, fmt.Errorf("poet: count %q -> %q: %w", words[i], words[i+1], err)
		}
	}

	if err := p.graph.Validate(); err != nil {
		return nil, fmt.Errorf("poet: affinity graph: %w", err)
	}

	p.logger.Debug("affinity graph built",
		zap.Int("words", p.words),
		zap.Int("vertices", p.graph.VertexCount()),
		zap.Int("edges", p.graph.EdgeCount()),
	)

	return p, nil
}

// NewFromReader reads the whole corpus from r and builds a Poet.
// Read failures wrap ErrCorpusUnreadable.
func NewFromReader(r io.Reader, opts ...Option) (*Poet, error) {
	lines, err := corpus.Read(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnreadable, err)
	}

	return New(lines, opts...)
}

// NewFromFile reads the corpus file at path and builds a Poet.
// A missing or unreadable file wraps ErrCorpusUnreadable.
func NewFromFile(path string, opts ...Option) (*Poet, error) {
	lines, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnreadable, err)
	}

	return New(lines, opts...)
}

// Graph returns a deep copy of the affinity graph.
func (p *Poet) Graph() *core.Graph {
	return p.graph.Clone()
}

// CorpusWords returns the number of words the corpus was split into.
func (p *Poet) CorpusWords() int {
	return p.words
}

// String returns "GraphPoet with graph: " followed by the graph dump.
func (p *Poet) String() string {
	return displayPrefix + p.graph.String()
}
