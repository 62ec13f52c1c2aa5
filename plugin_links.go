package md2mindmap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// markdownLink matches [text](url).
var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// linkIconRules picks an icon by URL pattern; first match wins.
// Immutable table, initialized once at startup.
var linkIconRules = []struct {
	match func(url string) bool
	icon  string
}{
	{func(u string) bool { return strings.Contains(u, "github.com") }, "🐙"},
	{func(u string) bool { return strings.Contains(u, "youtube.com") || strings.Contains(u, "youtu.be") }, "📺"},
	{func(u string) bool { return strings.Contains(u, "docs.google.com") }, "📄"},
	{func(u string) bool { return hasAnySuffix(u, ".pdf", ".doc", ".docx") }, "📄"},
	{func(u string) bool { return hasAnySuffix(u, ".jpg", ".jpeg", ".png", ".gif") }, "🖼️"},
}

// defaultLinkIcon is used when no rule matches.
const defaultLinkIcon = "🔗"

const enhancedLinkCSS = `.enhanced-link {
	text-decoration: none;
	color: #1976d2;
	border-bottom: 1px dotted #1976d2;
}
.enhanced-link:hover {
	background-color: #e3f2fd;
	padding: 2px 4px;
	border-radius: 3px;
}`

// linkPlugin rewrites markdown links into anchors with a per-site icon.
type linkPlugin struct{}

func (linkPlugin) Name() string { return config.PluginLinks }

func (linkPlugin) Transform(content string) (string, error) {
	return rewriteOutside(content, protectCodeAndMath, func(s string) string {
		return markdownLink.ReplaceAllStringFunc(s, func(link string) string {
			m := markdownLink.FindStringSubmatch(link)
			text, url := m[1], m[2]
			return fmt.Sprintf(`<a href="%s" target="_blank" class="enhanced-link">%s %s</a>`,
				url, linkIcon(url), text)
		})
	}), nil
}

func (linkPlugin) Assets() AssetSet {
	return AssetSet{InlineCSS: []string{enhancedLinkCSS}}
}

// linkIcon returns the icon for a URL.
func linkIcon(url string) string {
	for _, rule := range linkIconRules {
		if rule.match(url) {
			return rule.icon
		}
	}
	return defaultLinkIcon
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

var _ Plugin = linkPlugin{}
