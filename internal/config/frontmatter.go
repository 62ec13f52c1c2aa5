package config

import (
	"regexp"
	"strings"

	"github.com/alnah/go-md2mindmap/internal/decode"
)

// frontmatterPattern matches a YAML frontmatter block at the very top of
// the document: a fence line of dashes, the block, a closing fence.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*\n`)

// frontmatter is the decoded shape of the document's front-section. Only
// the nested mindmap block participates in resolution; other keys (title,
// author, ...) belong to the document and are ignored.
type frontmatter struct {
	Mindmap *Overlay `yaml:"mindmap"`
}

// ExtractFrontmatter splits a frontmatter block off the document source.
// It returns the mindmap overlay (nil when absent), the remaining body,
// and any warning produced by a malformed block.
//
// A block that fails to parse is skipped as a whole: resolution proceeds
// without it and the source is returned unchanged, so the fences stay
// visible in the document rather than being silently swallowed.
func ExtractFrontmatter(source string) (*Overlay, string, []Warning) {
	m := frontmatterPattern.FindStringSubmatchIndex(source)
	if m == nil {
		return nil, source, nil
	}

	block := source[m[2]:m[3]]
	body := source[m[1]:]

	var fm frontmatter
	if err := decode.YAML([]byte(block), &fm); err != nil {
		return nil, source, []Warning{{
			Err:    ErrMalformedSource,
			Detail: "frontmatter: " + firstLine(err.Error()),
		}}
	}

	return fm.Mindmap, body, nil
}

// firstLine trims a multi-line parser error down to its first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
