package md2mindmap

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// prismVersion pins the client-side highlighter the marked spans rely on.
const prismVersion = "1.29.0"

// fencedCode captures the info string and body of a ```lang ... ``` block.
var fencedCode = regexp.MustCompile("(?s)```(\\w+)?\n(.*?)\n?```")

// prismLanguages are the languages marked with their own class; anything
// else falls back to language-text. Immutable table.
var prismLanguages = map[string]bool{
	"javascript": true,
	"python":     true,
	"java":       true,
	"cpp":        true,
	"css":        true,
	"html":       true,
	"json":       true,
	"yaml":       true,
	"bash":       true,
	"sql":        true,
	"markdown":   true,
	"go":         true,
}

// codeHighlightPlugin marks code spans with language classes for the
// client-side highlighter.
type codeHighlightPlugin struct{}

func (codeHighlightPlugin) Name() string { return config.PluginCodeHighlight }

// Transform rewrites code spans in a single pass over the combined
// code-or-math pattern. Matching the whole span at once keeps a dollar
// sign inside a fence from splitting the fence apart, and leaves math
// spans and already-marked elements byte-identical.
func (codeHighlightPlugin) Transform(content string) (string, error) {
	return protectCodeAndMath.ReplaceAllStringFunc(content, func(span string) string {
		switch {
		case strings.HasPrefix(span, "```"):
			return markFencedBlock(span)
		case strings.HasPrefix(span, "`"):
			inner := strings.Trim(span, "`")
			if inner == "" {
				return span
			}
			return fmt.Sprintf(`<code class="language-text">%s</code>`,
				html.EscapeString(inner))
		default:
			// A math span, a ~~~ fence, or an already-marked element.
			return span
		}
	}), nil
}

// markFencedBlock converts one fenced block into a marked <pre><code>
// element. A fence that doesn't parse is left as-is.
func markFencedBlock(span string) string {
	m := fencedCode.FindStringSubmatch(span)
	if m == nil {
		return span
	}
	lang, code := m[1], m[2]
	if !prismLanguages[lang] {
		lang = "text"
	}
	return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
		lang, html.EscapeString(code))
}

func (codeHighlightPlugin) Assets() AssetSet {
	base := "https://cdn.jsdelivr.net/npm/prismjs@" + prismVersion
	return AssetSet{
		CSS: []string{base + "/themes/prism.min.css"},
		JS: []string{
			base + "/components/prism-core.min.js",
			base + "/plugins/autoloader/prism-autoloader.min.js",
		},
	}
}

var _ Plugin = codeHighlightPlugin{}
