package md2mindmap

import "strings"

// Heading level bounds for clamping malformed tokens.
const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// rootIndex is the arena index of the synthetic root node.
const rootIndex = 0

// Node is one entry in the tree arena. Children and Parent are arena
// indices; Parent is a non-owning back-reference.
type Node struct {
	Label      string
	Level      int // 0 only for the synthetic root
	LineNumber int // 1-based; 0 for the synthetic root

	// Content holds the raw source lines between this heading and the
	// next heading of level <= its own. It is the only field the plugin
	// pipeline rewrites.
	Content string

	// SectionStart/SectionEnd are the inclusive 1-based line bounds of
	// the node's section, used by the click-to-highlight script.
	SectionStart int
	SectionEnd   int

	Parent   int // -1 for the synthetic root
	Children []int
}

// Tree is an arena-backed heading tree. Index 0 is always the synthetic
// root; all other nodes have exactly one parent.
type Tree struct {
	Nodes []Node

	// LastLine is the 1-based number of the document's final line.
	LastLine int
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return &t.Nodes[rootIndex] }

// Walk visits nodes in pre-order, starting at the root.
func (t *Tree) Walk(visit func(idx int, n *Node)) {
	t.walkFrom(rootIndex, visit)
}

func (t *Tree) walkFrom(idx int, visit func(idx int, n *Node)) {
	visit(idx, &t.Nodes[idx])
	for _, child := range t.Nodes[idx].Children {
		t.walkFrom(child, visit)
	}
}

// BuildTree folds an ordered heading token stream into a nested tree and
// computes per-node section bounds from the raw source.
//
// The construction keeps an ancestor stack of arena indices seeded with
// the synthetic root at level 0. Each heading pops the stack while the
// top's level is >= its own, then attaches under the new top. A heading
// therefore nests under the nearest preceding heading of strictly lower
// level; skipped levels do not synthesize phantom intermediates.
//
// Levels outside 1..6 are clamped with a warning. A document with zero
// headings yields a root-only tree.
func BuildTree(tokens []HeadingToken, source, rootLabel string) (*Tree, Warnings) {
	lines := strings.Split(source, "\n")
	lastLine := len(lines)

	tree := &Tree{
		Nodes: make([]Node, 1, len(tokens)+1),

		LastLine: lastLine,
	}
	tree.Nodes[rootIndex] = Node{
		Label:        rootLabel,
		Level:        0,
		Parent:       -1,
		SectionStart: 1,
		SectionEnd:   lastLine,
	}

	var warns Warnings
	stack := []int{rootIndex}

	for _, tok := range tokens {
		level := tok.Level
		if level < minHeadingLevel || level > maxHeadingLevel {
			clamped := clampLevel(level)
			warns.Add(ErrHeadingLevelOutOfRange,
				"line %d: level %d clamped to %d", tok.LineNumber, level, clamped)
			level = clamped
		}

		for len(stack) > 1 && tree.Nodes[stack[len(stack)-1]].Level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]

		idx := len(tree.Nodes)
		tree.Nodes = append(tree.Nodes, Node{
			Label:      tok.Text,
			Level:      level,
			LineNumber: tok.LineNumber,
			Parent:     parent,
		})
		tree.Nodes[parent].Children = append(tree.Nodes[parent].Children, idx)
		stack = append(stack, idx)
	}

	tree.computeSectionBounds(lines)
	return tree, warns
}

// computeSectionBounds runs a single forward pass over non-root nodes,
// which are already in ascending line order, closing every open section
// whose level is >= the incoming node's level.
func (t *Tree) computeSectionBounds(lines []string) {
	var open []int // indices of nodes whose end line is not yet known

	for idx := 1; idx < len(t.Nodes); idx++ {
		n := &t.Nodes[idx]
		for len(open) > 0 && t.Nodes[open[len(open)-1]].Level >= n.Level {
			t.Nodes[open[len(open)-1]].SectionEnd = n.LineNumber - 1
			open = open[:len(open)-1]
		}
		n.SectionStart = n.LineNumber
		open = append(open, idx)
	}
	for _, idx := range open {
		t.Nodes[idx].SectionEnd = t.LastLine
	}

	// Content: the raw lines strictly after the heading, up to the end
	// of the section.
	for idx := 1; idx < len(t.Nodes); idx++ {
		n := &t.Nodes[idx]
		from, to := n.LineNumber, n.SectionEnd // from is the heading line itself
		if from >= to || from >= len(lines) {
			continue
		}
		if to > len(lines) {
			to = len(lines)
		}
		n.Content = strings.TrimRight(strings.Join(lines[from:to], "\n"), "\n")
	}
}

// clampLevel pins a malformed heading level to the nearest valid bound.
func clampLevel(level int) int {
	if level < minHeadingLevel {
		return minHeadingLevel
	}
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}
