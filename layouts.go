package md2mindmap

import "github.com/alnah/go-md2mindmap/internal/config"

// layoutOptions holds the vis-network option block for each layout.
// Immutable process-wide tables, initialized once and read-only after.
var layoutOptions = map[string]map[string]any{
	config.LayoutHierarchical: {
		"layout": map[string]any{
			"hierarchical": map[string]any{
				"direction":       "UD",
				"sortMethod":      "directed",
				"nodeSpacing":     100,
				"levelSeparation": 150,
				"treeSpacing":     200,
			},
		},
		"physics": map[string]any{"enabled": false},
	},
	config.LayoutRadial: {
		"layout": map[string]any{
			"hierarchical": map[string]any{
				"direction":  "UD",
				"sortMethod": "directed",
			},
		},
		"physics": map[string]any{
			"enabled": true,
			"solver":  "forceAtlas2Based",
			"forceAtlas2Based": map[string]any{
				"gravitationalConstant": -50,
				"centralGravity":        0.01,
				"springLength":          100,
				"springConstant":        0.08,
				"damping":               0.4,
				"avoidOverlap":          1,
			},
			"stabilization": map[string]any{"iterations": 150},
		},
	},
	config.LayoutTree: {
		"layout": map[string]any{
			"hierarchical": map[string]any{
				"direction":       "LR",
				"sortMethod":      "directed",
				"nodeSpacing":     120,
				"levelSeparation": 200,
			},
		},
		"physics": map[string]any{"enabled": false},
	},
	config.LayoutForceDirected: {
		"layout": map[string]any{"randomSeed": 2},
		"physics": map[string]any{
			"enabled": true,
			"solver":  "barnesHut",
			"barnesHut": map[string]any{
				"gravitationalConstant": -2000,
				"centralGravity":        0.3,
				"springLength":          95,
				"springConstant":        0.04,
				"damping":               0.09,
				"avoidOverlap":          0.1,
			},
			"stabilization": map[string]any{"iterations": 200},
		},
	},
	config.LayoutCircular: {
		"layout": map[string]any{"randomSeed": 1},
		"physics": map[string]any{
			"enabled": true,
			"solver":  "forceAtlas2Based",
			"forceAtlas2Based": map[string]any{
				"gravitationalConstant": -26,
				"centralGravity":        0.005,
				"springLength":          230,
				"springConstant":        0.18,
				"damping":               0.15,
			},
			"stabilization": map[string]any{"iterations": 100},
		},
	},
	config.LayoutTimeline: {
		"layout": map[string]any{
			"hierarchical": map[string]any{
				"direction":       "LR",
				"sortMethod":      "directed",
				"nodeSpacing":     80,
				"levelSeparation": 300,
				"treeSpacing":     100,
			},
		},
		"physics": map[string]any{"enabled": false},
	},
}

// layoutStyles holds extra CSS applied for layouts with a distinctive
// backdrop; layouts without an entry get no extra styling.
var layoutStyles = map[string]string{
	config.LayoutRadial: `.vis-network {
	background: radial-gradient(circle, rgba(255,255,255,0.1) 0%, rgba(240,240,240,0.3) 100%);
}`,
	config.LayoutCircular: `.vis-network {
	background: conic-gradient(from 0deg, rgba(255,255,255,0.1), rgba(240,240,240,0.2), rgba(255,255,255,0.1));
}`,
	config.LayoutForceDirected: `.vis-network {
	background: radial-gradient(ellipse at center, rgba(255,255,255,0.1) 0%, rgba(230,230,230,0.3) 100%);
}`,
	config.LayoutTimeline: `.vis-network {
	background: linear-gradient(90deg, rgba(255,255,255,0.1) 0%, rgba(240,240,240,0.2) 50%, rgba(255,255,255,0.1) 100%);
}
.vis-network::before {
	content: '';
	position: absolute;
	top: 50%;
	left: 0;
	right: 0;
	height: 2px;
	background: linear-gradient(90deg, transparent 0%, #ccc 20%, #ccc 80%, transparent 100%);
	z-index: 0;
}`,
}

// optionsForLayout returns the vis-network options for a layout name,
// falling back to hierarchical for anything unknown. Callers must not
// mutate the returned map.
func optionsForLayout(name string) map[string]any {
	if opts, ok := layoutOptions[name]; ok {
		return opts
	}
	return layoutOptions[config.LayoutHierarchical]
}

// stylesForLayout returns layout-specific CSS, possibly empty.
func stylesForLayout(name string) string {
	return layoutStyles[name]
}
