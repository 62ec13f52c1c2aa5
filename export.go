package md2mindmap

import "github.com/alnah/go-md2mindmap/internal/config"

// defaultBorderColor is used when the resolved colors list is empty and
// for the synthetic root, which has no heading level to index with.
const defaultBorderColor = "#2b7ce9"

// GraphNode is one exported node. IDs are pre-order traversal indices,
// stable for a given tree.
type GraphNode struct {
	ID      int    `json:"id"`
	Label   string `json:"label"`
	Content string `json:"content,omitempty"`
	Level   int    `json:"level"`
	Color   string `json:"color"`
	Hidden  bool   `json:"hidden"`

	// Line coordinates for the click-to-highlight script.
	LineNumber   int `json:"lineNumber"`
	SectionStart int `json:"sectionStart"`
	SectionEnd   int `json:"sectionEnd"`
}

// GraphEdge is one parent→child relation, in traversal order.
type GraphEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Graph is the read-only export snapshot consumed by the template layer.
type Graph struct {
	Nodes []GraphNode
	Edges []GraphEdge
}

// ExportGraph projects the finished tree and resolved config into node
// and edge lists with visual metadata. It is a pure projection: no text
// transformation, no validation, no mutation of the tree.
//
// Sibling headings that share identical text are exported verbatim;
// identity is the traversal index, never the label, so a text-matching
// client sees the ambiguity unchanged rather than silently disambiguated.
func ExportGraph(tree *Tree, cfg config.Config) *Graph {
	g := &Graph{
		Nodes: make([]GraphNode, 0, len(tree.Nodes)),
		Edges: make([]GraphEdge, 0, len(tree.Nodes)-1),
	}

	ids := make([]int, len(tree.Nodes)) // arena index -> exported id
	tree.Walk(func(idx int, n *Node) {
		id := len(g.Nodes)
		ids[idx] = id

		g.Nodes = append(g.Nodes, GraphNode{
			ID:           id,
			Label:        n.Label,
			Content:      n.Content,
			Level:        n.Level,
			Color:        nodeColor(n.Level, cfg.Colors),
			Hidden:       hiddenAt(n.Level, cfg.InitialExpandLevel),
			LineNumber:   n.LineNumber,
			SectionStart: n.SectionStart,
			SectionEnd:   n.SectionEnd,
		})
		if n.Parent >= 0 {
			g.Edges = append(g.Edges, GraphEdge{From: ids[n.Parent], To: id})
		}
	})

	return g
}

// nodeColor cycles the palette by (level-1) mod length.
func nodeColor(level int, colors []string) string {
	if level < 1 || len(colors) == 0 {
		return defaultBorderColor
	}
	return colors[(level-1)%len(colors)]
}

// hiddenAt implements the initial-expand rule; -1 means "expand all".
func hiddenAt(level, initialExpandLevel int) bool {
	if initialExpandLevel < 0 {
		return false
	}
	return level > initialExpandLevel
}
