package md2mindmap

import (
	"errors"
	"testing"
)

// buildFromTokens is a test helper for trees with explicit tokens.
func buildFromTokens(t *testing.T, source string, tokens []HeadingToken) (*Tree, Warnings) {
	t.Helper()
	return BuildTree(tokens, source, "test")
}

func TestBuildTreeNesting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		tokens []HeadingToken
		// wantParents maps node label -> parent label ("" = root)
		wantParents map[string]string
	}{
		{
			name:   "siblings under shared parent",
			source: "# A\n## B\n## C\n# D",
			tokens: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
				{Level: 2, Text: "B", LineNumber: 2},
				{Level: 2, Text: "C", LineNumber: 3},
				{Level: 1, Text: "D", LineNumber: 4},
			},
			wantParents: map[string]string{"A": "", "B": "A", "C": "A", "D": ""},
		},
		{
			name:   "skipped level nests directly without phantom node",
			source: "# A\n### B",
			tokens: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
				{Level: 3, Text: "B", LineNumber: 2},
			},
			wantParents: map[string]string{"A": "", "B": "A"},
		},
		{
			name:   "deeper heading then shallower pops back to ancestor",
			source: "# A\n## B\n### C\n## D",
			tokens: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
				{Level: 2, Text: "B", LineNumber: 2},
				{Level: 3, Text: "C", LineNumber: 3},
				{Level: 2, Text: "D", LineNumber: 4},
			},
			wantParents: map[string]string{"A": "", "B": "A", "C": "B", "D": "A"},
		},
		{
			name:   "document starting below level 1",
			source: "### A\n# B",
			tokens: []HeadingToken{
				{Level: 3, Text: "A", LineNumber: 1},
				{Level: 1, Text: "B", LineNumber: 2},
			},
			wantParents: map[string]string{"A": "", "B": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, warns := buildFromTokens(t, tt.source, tt.tokens)
			if len(warns) != 0 {
				t.Fatalf("unexpected warnings: %v", warns)
			}
			if got, want := len(tree.Nodes), len(tt.tokens)+1; got != want {
				t.Fatalf("node count = %d, want %d", got, want)
			}

			for label, wantParent := range tt.wantParents {
				node := findNode(t, tree, label)
				parent := tree.Nodes[node.Parent]
				gotParent := parent.Label
				if node.Parent == rootIndex {
					gotParent = ""
				}
				if gotParent != wantParent {
					t.Errorf("parent of %q = %q, want %q", label, gotParent, wantParent)
				}
			}
		})
	}
}

func TestBuildTreeEveryNodeHasOneParent(t *testing.T) {
	t.Parallel()

	tokens := []HeadingToken{
		{Level: 1, Text: "A", LineNumber: 1},
		{Level: 3, Text: "B", LineNumber: 2},
		{Level: 2, Text: "C", LineNumber: 3},
		{Level: 6, Text: "D", LineNumber: 4},
		{Level: 1, Text: "E", LineNumber: 5},
	}
	tree, _ := buildFromTokens(t, "# A\n### B\n## C\n###### D\n# E", tokens)

	if tree.Root().Parent != -1 {
		t.Errorf("root parent = %d, want -1", tree.Root().Parent)
	}

	// Each non-root node appears exactly once in its parent's children.
	for idx := 1; idx < len(tree.Nodes); idx++ {
		n := tree.Nodes[idx]
		if n.Parent < 0 || n.Parent >= len(tree.Nodes) {
			t.Fatalf("node %q has out-of-range parent %d", n.Label, n.Parent)
		}
		count := 0
		for _, c := range tree.Nodes[n.Parent].Children {
			if c == idx {
				count++
			}
		}
		if count != 1 {
			t.Errorf("node %q appears %d times in parent's children, want 1", n.Label, count)
		}
	}

	// Pre-order walk reaches every node exactly once: connected, acyclic.
	seen := make(map[int]int)
	tree.Walk(func(idx int, _ *Node) { seen[idx]++ })
	if len(seen) != len(tree.Nodes) {
		t.Errorf("walk visited %d nodes, want %d", len(seen), len(tree.Nodes))
	}
	for idx, n := range seen {
		if n != 1 {
			t.Errorf("node %d visited %d times", idx, n)
		}
	}
}

func TestBuildTreeChildrenOrderedByLine(t *testing.T) {
	t.Parallel()

	tokens := []HeadingToken{
		{Level: 1, Text: "A", LineNumber: 1},
		{Level: 2, Text: "B", LineNumber: 2},
		{Level: 2, Text: "C", LineNumber: 4},
		{Level: 2, Text: "D", LineNumber: 6},
	}
	tree, _ := buildFromTokens(t, "# A\n## B\nb\n## C\nc\n## D", tokens)

	a := findNode(t, tree, "A")
	prev := 0
	for _, c := range a.Children {
		if tree.Nodes[c].LineNumber <= prev {
			t.Fatalf("children not in ascending line order: %v", a.Children)
		}
		prev = tree.Nodes[c].LineNumber
	}
}

func TestBuildTreeSectionBounds(t *testing.T) {
	t.Parallel()

	// 1: # A
	// 2: alpha
	// 3: ## B
	// 4: beta
	// 5: beta2
	// 6: ## C
	// 7: # D
	// 8: delta
	source := "# A\nalpha\n## B\nbeta\nbeta2\n## C\n# D\ndelta"
	tokens := []HeadingToken{
		{Level: 1, Text: "A", LineNumber: 1},
		{Level: 2, Text: "B", LineNumber: 3},
		{Level: 2, Text: "C", LineNumber: 6},
		{Level: 1, Text: "D", LineNumber: 7},
	}
	tree, _ := buildFromTokens(t, source, tokens)

	tests := []struct {
		label       string
		wantStart   int
		wantEnd     int
		wantContent string
	}{
		{"A", 1, 6, "alpha\n## B\nbeta\nbeta2\n## C"},
		{"B", 3, 5, "beta\nbeta2"},
		{"C", 6, 6, ""},
		{"D", 7, 8, "delta"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			n := findNode(t, tree, tt.label)
			if n.SectionStart != tt.wantStart || n.SectionEnd != tt.wantEnd {
				t.Errorf("bounds = (%d, %d), want (%d, %d)",
					n.SectionStart, n.SectionEnd, tt.wantStart, tt.wantEnd)
			}
			if n.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", n.Content, tt.wantContent)
			}
		})
	}

	if root := tree.Root(); root.SectionStart != 1 || root.SectionEnd != 8 {
		t.Errorf("root bounds = (%d, %d), want (1, 8)", root.SectionStart, root.SectionEnd)
	}
}

func TestBuildTreeLevelClamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     int
		wantLevel int
	}{
		{"level zero clamps to one", 0, 1},
		{"negative level clamps to one", -2, 1},
		{"level seven clamps to six", 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := []HeadingToken{{Level: tt.level, Text: "X", LineNumber: 1}}
			tree, warns := buildFromTokens(t, "X", tokens)

			if len(warns) != 1 {
				t.Fatalf("warnings = %d, want 1", len(warns))
			}
			if !errors.Is(warns[0].Err, ErrHeadingLevelOutOfRange) {
				t.Errorf("warning error = %v, want ErrHeadingLevelOutOfRange", warns[0].Err)
			}
			if got := findNode(t, tree, "X").Level; got != tt.wantLevel {
				t.Errorf("level = %d, want %d", got, tt.wantLevel)
			}
		})
	}
}

func TestBuildTreeEmptyDocument(t *testing.T) {
	t.Parallel()

	tree, warns := BuildTree(nil, "just prose\nno headings", "empty")

	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if len(tree.Nodes) != 1 {
		t.Fatalf("node count = %d, want 1 (root only)", len(tree.Nodes))
	}
	root := tree.Root()
	if root.Label != "empty" || root.Level != 0 {
		t.Errorf("root = %q level %d, want %q level 0", root.Label, root.Level, "empty")
	}
	if root.SectionEnd != 2 {
		t.Errorf("root SectionEnd = %d, want 2", root.SectionEnd)
	}
}

// findNode returns the first node with the given label.
func findNode(t *testing.T, tree *Tree, label string) *Node {
	t.Helper()
	for i := range tree.Nodes {
		if tree.Nodes[i].Label == label {
			return &tree.Nodes[i]
		}
	}
	t.Fatalf("node %q not found", label)
	return nil
}
