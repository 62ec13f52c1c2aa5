package md2mindmap

import (
	"fmt"
	"sort"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// AssetSet declares the auxiliary style/script assets a plugin needs in
// the final artifact.
type AssetSet struct {
	CSS       []string // stylesheet URLs
	JS        []string // script URLs
	InlineCSS []string // literal CSS blocks
}

// merge appends other's assets in order.
func (a *AssetSet) merge(other AssetSet) {
	a.CSS = append(a.CSS, other.CSS...)
	a.JS = append(a.JS, other.JS...)
	a.InlineCSS = append(a.InlineCSS, other.InlineCSS...)
}

// Plugin is one content transformer. Implementations are selected from a
// registry by name; new transformers are added by registration, not by
// extending a hierarchy. A Plugin rewrites node content only — it never
// sees, let alone mutates, a node's level, line number, or position.
type Plugin interface {
	// Name identifies the plugin in the config plugins map.
	Name() string

	// Transform returns the rewritten content. Implementations must
	// leave protected code/math spans byte-identical.
	Transform(content string) (string, error)

	// Assets lists the auxiliary assets the plugin's output relies on.
	Assets() AssetSet
}

// pipelineOrder fixes the application order independent of map iteration:
// prose rewrites (emoji, links) run before the content is partitioned
// into marked code and math spans.
var pipelineOrder = []string{
	config.PluginEmoji,
	config.PluginLinks,
	config.PluginCodeHighlight,
	config.PluginMath,
}

// Registry maps plugin names to implementations.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a registry pre-populated with the built-in
// transformers: emoji, links, code-highlight, math.
func NewRegistry() *Registry {
	r := &Registry{plugins: make(map[string]Plugin)}
	for _, p := range []Plugin{
		emojiPlugin{},
		linkPlugin{},
		codeHighlightPlugin{},
		mathPlugin{},
	} {
		// Built-in names are distinct; Register cannot fail here.
		_ = r.Register(p)
	}
	return r
}

// Register adds a plugin. Returns ErrDuplicatePlugin when the name is
// already taken.
func (r *Registry) Register(p Plugin) error {
	if _, exists := r.plugins[p.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePlugin, p.Name())
	}
	r.plugins[p.Name()] = p
	return nil
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	p, ok := r.plugins[name]
	return p, ok
}

// Pipeline applies the enabled plugins, in fixed order, to node content.
type Pipeline struct {
	registry *Registry
	enabled  map[string]bool
}

// NewPipeline builds a pipeline over the registry using the resolved
// plugins map. Names absent from the map are treated as disabled.
func NewPipeline(registry *Registry, enabled map[string]bool) *Pipeline {
	return &Pipeline{registry: registry, enabled: enabled}
}

// Apply rewrites the content of every node in the tree and returns the
// aggregated assets of the plugins that actually ran for at least one
// node, plus any plugin-failure warnings.
//
// A failure inside one plugin for one node is isolated: that plugin's
// effect on that node is a no-op and processing continues.
func (p *Pipeline) Apply(tree *Tree) (AssetSet, Warnings) {
	order, warns := p.order()

	var (
		assets AssetSet
		ran    = make(map[string]bool)
	)

	for idx := range tree.Nodes {
		node := &tree.Nodes[idx]
		if node.Content == "" {
			continue
		}
		for _, name := range order {
			plugin, _ := p.registry.Lookup(name)

			rewritten, err := safeTransform(plugin, node.Content)
			if err != nil {
				warns.Add(ErrPluginFailure, "plugin %q on node at line %d: %v", name, node.LineNumber, err)
				continue
			}
			node.Content = rewritten

			if !ran[name] {
				ran[name] = true
				assets.merge(plugin.Assets())
			}
		}
	}

	return assets, warns
}

// order returns the enabled, registered plugin names in application
// order: the built-ins in their fixed sequence, then any registered
// extras sorted by name. An enabled name with no registration warns.
func (p *Pipeline) order() ([]string, Warnings) {
	var (
		order    []string
		warns    Warnings
		builtins = make(map[string]bool, len(pipelineOrder))
	)

	appendKnown := func(name string) {
		if _, ok := p.registry.Lookup(name); ok {
			order = append(order, name)
			return
		}
		warns.Add(ErrUnknownPlugin, "%q is enabled but not registered", name)
	}

	for _, name := range pipelineOrder {
		builtins[name] = true
		if p.enabled[name] {
			appendKnown(name)
		}
	}

	var extras []string
	for name, on := range p.enabled {
		if on && !builtins[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		appendKnown(name)
	}

	return order, warns
}

// safeTransform runs a plugin transform, converting a panic into an
// error so one bad plugin cannot take down the run.
func safeTransform(p Plugin, content string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = content
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return p.Transform(content)
}
