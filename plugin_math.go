package md2mindmap

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// katexVersion pins the client-side math renderer.
const katexVersion = "0.16.8"

// mathPlugin marks LaTeX expressions for client-side KaTeX rendering.
// The literal expression is kept as element text so the content degrades
// readably when scripts are unavailable.
type mathPlugin struct{}

func (mathPlugin) Name() string { return config.PluginMath }

// Transform wraps block and inline math in a single pass. The combined
// pattern tries the block form first, so $$...$$ is never consumed as
// two inline expressions, and the inline pass can never re-wrap the
// interior of a block already handled.
func (mathPlugin) Transform(content string) (string, error) {
	return rewriteOutside(content, protectCode, func(s string) string {
		return mathSpanPattern.ReplaceAllStringFunc(s, func(expr string) string {
			if strings.HasPrefix(expr, "$$") {
				inner := strings.TrimSuffix(strings.TrimPrefix(expr, "$$"), "$$")
				return fmt.Sprintf(`<div class="katex-block" data-katex="\[%s\]">$$%s$$</div>`, inner, inner)
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(expr, "$"), "$")
			return fmt.Sprintf(`<span class="katex-inline" data-katex="\(%s\)">$%s$</span>`, inner, inner)
		})
	}), nil
}

func (mathPlugin) Assets() AssetSet {
	base := "https://cdn.jsdelivr.net/npm/katex@" + katexVersion + "/dist"
	return AssetSet{
		CSS: []string{base + "/katex.min.css"},
		JS: []string{
			base + "/katex.min.js",
			base + "/contrib/auto-render.min.js",
		},
	}
}

var _ Plugin = mathPlugin{}
