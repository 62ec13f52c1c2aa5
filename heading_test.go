package md2mindmap

import (
	"context"
	"errors"
	"testing"
)

func TestTokenizeHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []HeadingToken
	}{
		{
			name:   "atx levels in order",
			source: "# One\n## Two\n### Three",
			want: []HeadingToken{
				{Level: 1, Text: "One", LineNumber: 1},
				{Level: 2, Text: "Two", LineNumber: 2},
				{Level: 3, Text: "Three", LineNumber: 3},
			},
		},
		{
			name:   "line numbers skip body and blank lines",
			source: "# A\n\nsome body\n\n## B",
			want: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
				{Level: 2, Text: "B", LineNumber: 5},
			},
		},
		{
			name:   "inline markup stripped from text",
			source: "# **Bold** and *em* title",
			want: []HeadingToken{
				{Level: 1, Text: "Bold and em title", LineNumber: 1},
			},
		},
		{
			name:   "code span keeps backticks",
			source: "## Using `fmt.Println`",
			want: []HeadingToken{
				{Level: 2, Text: "Using `fmt.Println`", LineNumber: 1},
			},
		},
		{
			name:   "setext heading",
			source: "Title\n=====",
			want: []HeadingToken{
				{Level: 1, Text: "Title", LineNumber: 1},
			},
		},
		{
			name:   "heading inside blockquote ignored",
			source: "# A\n> ## not a section",
			want: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
			},
		},
		{
			name:   "heading-like text inside fenced code ignored",
			source: "# A\n```\n# not a heading\n```",
			want: []HeadingToken{
				{Level: 1, Text: "A", LineNumber: 1},
			},
		},
		{
			name:   "no headings",
			source: "just prose\nand more prose",
			want:   nil,
		},
	}

	tok := newGoldmarkTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tok.Tokenize(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tok := newGoldmarkTokenizer()
	if _, err := tok.Tokenize(ctx, "# A"); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestLineOfOffset(t *testing.T) {
	t.Parallel()

	src := []byte("ab\ncd\n\nef")
	starts := lineStartOffsets(src)

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1}, {2, 1}, {3, 2}, {5, 2}, {6, 3}, {7, 4}, {8, 4},
	}
	for _, tt := range tests {
		if got := lineOfOffset(starts, tt.offset); got != tt.want {
			t.Errorf("lineOfOffset(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}
