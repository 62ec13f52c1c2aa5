package config

import (
	"errors"
	"testing"
)

func TestExtractFrontmatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantOverlay bool
		wantBody    string
		wantTheme   string
	}{
		{
			name:        "mindmap block extracted",
			source:      "---\ntitle: Doc\nmindmap:\n  theme: dark\n  layout: radial\n---\n# Heading",
			wantOverlay: true,
			wantBody:    "# Heading",
			wantTheme:   "dark",
		},
		{
			name:        "frontmatter without mindmap key",
			source:      "---\ntitle: Doc\nauthor: someone\n---\nbody",
			wantOverlay: false,
			wantBody:    "body",
		},
		{
			name:        "no frontmatter",
			source:      "# Just a heading\ntext",
			wantOverlay: false,
			wantBody:    "# Just a heading\ntext",
		},
		{
			name:        "fence not at very top is ignored",
			source:      "\n---\nmindmap:\n  theme: dark\n---\nbody",
			wantOverlay: false,
			wantBody:    "\n---\nmindmap:\n  theme: dark\n---\nbody",
		},
		{
			name:        "thematic break alone is not frontmatter",
			source:      "some text\n---\nmore text",
			wantOverlay: false,
			wantBody:    "some text\n---\nmore text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			overlay, body, warns := ExtractFrontmatter(tt.source)
			if len(warns) != 0 {
				t.Fatalf("unexpected warnings: %v", warns)
			}
			if (overlay != nil) != tt.wantOverlay {
				t.Fatalf("overlay presence = %v, want %v", overlay != nil, tt.wantOverlay)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if tt.wantTheme != "" {
				if overlay.Theme == nil || *overlay.Theme != tt.wantTheme {
					t.Errorf("theme = %v, want %q", overlay.Theme, tt.wantTheme)
				}
			}
		})
	}
}

func TestExtractFrontmatterMalformed(t *testing.T) {
	t.Parallel()

	source := "---\nmindmap: [unclosed\n---\n# Heading"
	overlay, body, warns := ExtractFrontmatter(source)

	if overlay != nil {
		t.Errorf("overlay = %+v, want nil for malformed block", overlay)
	}
	// The whole source is kept so the fences stay visible downstream.
	if body != source {
		t.Errorf("body = %q, want source unchanged", body)
	}
	if len(warns) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warns))
	}
	if !errors.Is(warns[0].Err, ErrMalformedSource) {
		t.Errorf("warning = %v, want ErrMalformedSource", warns[0].Err)
	}
}

func TestExtractFrontmatterNumericAndBoolFields(t *testing.T) {
	t.Parallel()

	source := "---\nmindmap:\n  maxWidth: 320\n  toolbar: false\n  plugins:\n    math: false\n---\nbody"
	overlay, _, warns := ExtractFrontmatter(source)

	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if overlay == nil {
		t.Fatal("overlay missing")
	}
	if overlay.MaxWidth == nil || *overlay.MaxWidth != 320 {
		t.Errorf("maxWidth = %v, want 320", overlay.MaxWidth)
	}
	if overlay.Toolbar == nil || *overlay.Toolbar {
		t.Errorf("toolbar = %v, want false", overlay.Toolbar)
	}
	if enabled, ok := overlay.Plugins[PluginMath]; !ok || enabled {
		t.Errorf("plugins.math = %v/%v, want explicit false", enabled, ok)
	}
}
