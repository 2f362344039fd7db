// File: compose.go
// Role: Bridge lookup and poem composition over the affinity graph.
// Determinism:
//   - Candidates are scanned in Targets order; ties keep the first maximum.
// Concurrency:
//   - Safe for parallel callers; only graph read locks are taken.

package poet

import (
	"strings"

	"go.uber.org/zap"
)

// Token is one word of a composed poem.
type Token struct {
	// Text is the input word verbatim, or the lower-case bridge word.
	Text string

	// Bridge marks words inserted from the affinity graph.
	Bridge bool

	// Score is w(a,bridge)+w(bridge,b) for bridge tokens, 0 otherwise.
	Score int64
}

// Poem expands input with bridge words and returns the words joined by
// single spaces. Blank input yields "" and a single word is returned as is.
func (p *Poet) Poem(input string) string {
	tokens := p.Compose(input)
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}

	return sb.String()
}

// Compose walks input pair by pair and returns the poem as tokens: each
// input word in its original casing, followed by the best bridge toward
// the next word when one exists. Blank input yields nil.
func (p *Poet) Compose(input string) []Token {
	words := splitWords(input)
	if len(words) == 0 {
		return nil
	}

	out := make([]Token, 0, 2*len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, Token{Text: words[i]})
		if bridge, score, ok := p.Bridge(words[i], words[i+1]); ok {
			out = append(out, Token{Text: bridge, Bridge: true, Score: score})
		}
	}
	out = append(out, Token{Text: words[len(words)-1]})

	return out
}

// Bridge finds the word c maximizing w(a,c)+w(c,b) over all two-edge paths
// a → c → b, comparing a and b case-insensitively. Candidates are scanned
// in Targets(a) order and only a strictly greater score replaces the
// current best, so the earliest maximum wins ties. ok is false when no
// two-edge path exists.
//
// Complexity: O(d) lookups, d = out-degree of a.
func (p *Poet) Bridge(a, b string) (word string, score int64, ok bool) {
	a, b = strings.ToLower(a), strings.ToLower(b)

	for _, first := range p.graph.Targets(a) {
		second, exists := p.graph.Weight(first.To, b)
		if !exists {
			continue
		}
		if s := first.Weight + second; !ok || s > score {
			word, score, ok = first.To, s, true
		}
	}

	if ok {
		p.logger.Debug("bridge selected",
			zap.String("from", a),
			zap.String("to", b),
			zap.String("bridge", word),
			zap.Int64("score", score),
		)
	}

	return word, score, ok
}
