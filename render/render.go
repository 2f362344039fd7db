// File: render.go
// Role: Poem tokens to terminal text, plain or with styled bridge words.
// Determinism:
//   - Styling depends on the lipgloss color profile; text content does not.

// Package render turns composed poem tokens into terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphpoet/poet"
)

// BridgeStyle returns the style used for bridge words: bold, in color.
// color accepts anything lipgloss.Color does (ANSI index or "#rrggbb").
func BridgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// Plain joins token texts with single spaces. It matches poet.Poet.Poem.
func Plain(tokens []poet.Token) string {
	return join(tokens, func(t poet.Token) string { return t.Text })
}

// Highlight is Plain with bridge words rendered through style.
// Input words are never styled.
func Highlight(tokens []poet.Token, style lipgloss.Style) string {
	return join(tokens, func(t poet.Token) string {
		if t.Bridge {
			return style.Render(t.Text)
		}
		return t.Text
	})
}

func join(tokens []poet.Token, text func(poet.Token) string) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text(tok))
	}

	return sb.String()
}
