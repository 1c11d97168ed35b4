package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// SyntaxHighlighter renders source lines with terminal colors. Highlighting
// is a display concern only; the diff engine never sees styled text.
type SyntaxHighlighter struct {
	style  *chroma.Style
	lexers map[string]chroma.Lexer
}

// NewSyntaxHighlighter creates a highlighter using the named chroma style.
func NewSyntaxHighlighter(styleName string) *SyntaxHighlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &SyntaxHighlighter{
		style:  style,
		lexers: make(map[string]chroma.Lexer),
	}
}

// Highlight highlights a single line of the given file. Unknown file types
// and tokenizer failures return the line unchanged.
func (h *SyntaxHighlighter) Highlight(line, filePath string) string {
	lexer := h.lexerFor(filePath)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token))
	}
	return result.String()
}

// lexerFor resolves and caches the lexer for a file path.
func (h *SyntaxHighlighter) lexerFor(filePath string) chroma.Lexer {
	if filePath == "" {
		return nil
	}
	if lexer, ok := h.lexers[filePath]; ok {
		return lexer
	}

	lexer := lexers.Match(filepath.Base(filePath))
	if lexer == nil {
		if ext := strings.ToLower(filepath.Ext(filePath)); ext != "" {
			lexer = lexers.Get(strings.TrimPrefix(ext, "."))
		}
	}
	h.lexers[filePath] = lexer
	return lexer
}

// styleToken applies lipgloss styling to a chroma token.
func (h *SyntaxHighlighter) styleToken(token chroma.Token) string {
	entry := h.style.Get(token.Type)
	if entry == (chroma.StyleEntry{}) {
		return token.Value
	}

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		color := entry.Colour.String()
		if strings.HasPrefix(color, "#") {
			style = style.Foreground(lipgloss.Color(color))
		}
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style.Render(token.Value)
}
