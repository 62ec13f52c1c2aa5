package md2mindmap

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// HeadingToken is one heading extracted from document source.
type HeadingToken struct {
	Level      int    // 1-6 for well-formed markdown
	Text       string // inline text of the heading, markup stripped
	LineNumber int    // 1-based source line of the heading
}

// tokenizer abstracts heading extraction from raw source.
type tokenizer interface {
	Tokenize(ctx context.Context, source string) ([]HeadingToken, error)
}

// goldmarkTokenizer extracts heading tokens by walking the goldmark AST.
type goldmarkTokenizer struct {
	md goldmark.Markdown
}

// newGoldmarkTokenizer creates a tokenizer with GFM extensions so that
// heading text inside tables, strikethrough etc. parses the same way the
// document panel renders it.
func newGoldmarkTokenizer() *goldmarkTokenizer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	return &goldmarkTokenizer{md: md}
}

// Tokenize parses the source and returns headings in document order.
// Line numbers are recovered from the byte offsets of heading segments.
func (t *goldmarkTokenizer) Tokenize(ctx context.Context, source string) ([]HeadingToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(source)
	reader := text.NewReader(src)
	doc := t.md.Parser().Parse(reader)

	starts := lineStartOffsets(src)

	var tokens []HeadingToken
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}

		line := 1
		if lines := h.Lines(); lines.Len() > 0 {
			line = lineOfOffset(starts, lines.At(0).Start)
		}

		tokens = append(tokens, HeadingToken{
			Level:      h.Level,
			Text:       headingText(h, src),
			LineNumber: line,
		})
	}
	return tokens, nil
}

// headingText collects the inline text of a heading node, dropping markup.
func headingText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, src, &buf)
	}
	return strings.TrimSpace(buf.String())
}

// collectText appends the raw text of an inline node and its children.
func collectText(n ast.Node, src []byte, buf *bytes.Buffer) {
	switch t := n.(type) {
	case *ast.Text:
		buf.Write(t.Value(src))
		if t.HardLineBreak() || t.SoftLineBreak() {
			buf.WriteByte(' ')
		}
	case *ast.String:
		buf.Write(t.Value)
	case *ast.CodeSpan:
		// Preserve the backticks so plugins can still protect the span.
		buf.WriteByte('`')
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collectText(c, src, buf)
		}
		buf.WriteByte('`')
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			collectText(c, src, buf)
		}
	}
}

// lineStartOffsets returns the byte offset of each line start, index 0 = line 1.
func lineStartOffsets(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOfOffset converts a byte offset to a 1-based line number by binary
// search over line start offsets.
func lineOfOffset(starts []int, offset int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// Compile-time interface check.
var _ tokenizer = (*goldmarkTokenizer)(nil)
