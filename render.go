package md2mindmap

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/alnah/go-md2mindmap/internal/assets"
	"github.com/alnah/go-md2mindmap/internal/config"
)

// labelPolicy sanitizes plugin-produced markup in node labels and
// content before it is embedded in the artifact. Plugins emit a small
// HTML vocabulary (anchors, code, katex spans); everything else is
// stripped.
var labelPolicy = newLabelPolicy()

func newLabelPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "data-katex").OnElements("span", "div", "code", "pre", "a")
	p.AllowAttrs("target").OnElements("a")
	return p
}

// templateData feeds the embedded artifact template. JSON blocks are
// pre-marshaled and typed template.JS so html/template embeds them into
// the script context verbatim.
type templateData struct {
	Title string

	ThemeCSS        template.CSS
	LayoutCSS       template.CSS
	PluginInlineCSS template.CSS
	PluginCSS       []string
	PluginJS        []string

	NodesJSON  template.JS
	EdgesJSON  template.JS
	ConfigJSON template.JS
	LayoutJSON template.JS

	DocumentHTML   template.HTML
	NumberedSource template.HTML
}

// renderArtifact produces the self-contained HTML presentation file from
// the exported graph, the resolved config, and the document body.
func renderArtifact(ctx context.Context, conv htmlConverter, g *Graph, cfg config.Config, body, title string, pluginAssets AssetSet) (string, error) {
	tmplSrc, err := assets.Template()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	tmpl, err := template.New("mindmap").Parse(tmplSrc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}

	themeCSS, err := assets.ThemeCSS(cfg.Theme)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}

	docHTML, err := conv.ToHTML(ctx, body)
	if err != nil {
		return "", err
	}

	nodesJSON, err := json.Marshal(sanitizeNodes(g.Nodes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	edgesJSON, err := json.Marshal(g.Edges)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	configJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	layoutJSON, err := json.Marshal(optionsForLayout(cfg.Layout))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}

	data := templateData{
		Title:           title,
		ThemeCSS:        template.CSS(themeCSS),
		LayoutCSS:       template.CSS(stylesForLayout(cfg.Layout)),
		PluginInlineCSS: template.CSS(strings.Join(pluginAssets.InlineCSS, "\n")),
		PluginCSS:       pluginAssets.CSS,
		PluginJS:        pluginAssets.JS,
		NodesJSON:       template.JS(nodesJSON),
		EdgesJSON:       template.JS(edgesJSON),
		ConfigJSON:      template.JS(configJSON),
		LayoutJSON:      template.JS(layoutJSON),
		DocumentHTML:    template.HTML(labelPolicy.Sanitize(docHTML)), // #nosec G203 -- sanitized above
		NumberedSource:  numberedSource(body),
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	return out.String(), nil
}

// sanitizeNodes returns a copy of the nodes with label and content run
// through the sanitizer; the input graph is left untouched.
func sanitizeNodes(nodes []GraphNode) []GraphNode {
	out := make([]GraphNode, len(nodes))
	for i, n := range nodes {
		n.Label = labelPolicy.Sanitize(n.Label)
		n.Content = labelPolicy.Sanitize(n.Content)
		out[i] = n
	}
	return out
}

// numberedSource wraps each source line in a span with a line-row-N id
// so the highlight script can address sections by line number.
func numberedSource(body string) template.HTML {
	lines := strings.Split(body, "\n")
	var b strings.Builder
	for i, line := range lines {
		num := i + 1
		fmt.Fprintf(&b, `<span id="line-row-%d"><span class="line-number">%3d</span>%s</span>`,
			num, num, html.EscapeString(line))
		b.WriteByte('\n')
	}
	// Spans are built from escaped text only.
	return template.HTML(b.String()) // #nosec G203
}
