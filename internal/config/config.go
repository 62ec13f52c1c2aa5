// Package config resolves mindmap configuration from four layered
// sources: built-in defaults, an external config file, the document's
// frontmatter, and CLI overrides. Higher tiers win per field; invalid
// values fall back to the next-lower valid tier with a warning.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for config operations. The resolver never fails: these
// surface inside Warnings while resolution continues.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrMalformedSource = errors.New("malformed config source")
	ErrInvalidEnum     = errors.New("invalid enum value")
	ErrInvalidValue    = errors.New("invalid field value")
)

// Theme names form a closed set.
const (
	ThemeDefault  = "default"
	ThemeDark     = "dark"
	ThemeColorful = "colorful"
	ThemeMinimal  = "minimal"
)

// Layout names form a closed set.
const (
	LayoutHierarchical  = "hierarchical"
	LayoutRadial        = "radial"
	LayoutTree          = "tree"
	LayoutForceDirected = "force_directed"
	LayoutCircular      = "circular"
	LayoutTimeline      = "timeline"
)

// Plugin names known to the content pipeline.
const (
	PluginMath          = "math"
	PluginCodeHighlight = "code-highlight"
	PluginEmoji         = "emoji"
	PluginLinks         = "links"
)

// Config is the resolved, immutable configuration for one run.
type Config struct {
	Theme  string   `json:"theme"`
	Layout string   `json:"layout"`
	Colors []string `json:"colors"`

	MaxWidth          int `json:"maxWidth"`
	LineWidth         int `json:"lineWidth"`
	SpacingHorizontal int `json:"spacingHorizontal"`
	SpacingVertical   int `json:"spacingVertical"`

	Duration           int `json:"duration"`
	InitialExpandLevel int `json:"initialExpandLevel"` // -1 means "expand all"
	ColorFreezeLevel   int `json:"colorFreezeLevel"`

	Zoom    bool `json:"zoom"`
	Pan     bool `json:"pan"`
	Toolbar bool `json:"toolbar"`

	Plugins map[string]bool `json:"plugins"`
}

// Default returns the built-in base configuration, the lowest tier.
func Default() Config {
	return Config{
		Theme:              ThemeDefault,
		Layout:             LayoutHierarchical,
		Colors:             themePalettes[ThemeDefault],
		MaxWidth:           200,
		LineWidth:          2,
		SpacingHorizontal:  80,
		SpacingVertical:    5,
		Duration:           500,
		InitialExpandLevel: -1,
		ColorFreezeLevel:   0,
		Zoom:               true,
		Pan:                true,
		Toolbar:            true,
		Plugins: map[string]bool{
			PluginMath:          true,
			PluginCodeHighlight: true,
			PluginEmoji:         true,
			PluginLinks:         true,
		},
	}
}

// themePalettes maps each theme to its node color cycle. Immutable after
// init; Resolve copies slices before handing them out.
var themePalettes = map[string][]string{
	ThemeDefault:  {"#1976d2", "#388e3c", "#f57c00", "#7b1fa2"},
	ThemeDark:     {"#64b5f6", "#81c784", "#ffb74d", "#ba68c8"},
	ThemeColorful: {"#e91e63", "#9c27b0", "#673ab7", "#3f51b5", "#2196f3", "#00bcd4"},
	ThemeMinimal:  {"#424242", "#616161", "#757575", "#9e9e9e"},
}

// Palette returns a copy of the color cycle for a theme, or nil for an
// unknown theme name.
func Palette(theme string) []string {
	p, ok := themePalettes[theme]
	if !ok {
		return nil
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// ValidTheme reports whether name belongs to the theme enum.
func ValidTheme(name string) bool {
	switch name {
	case ThemeDefault, ThemeDark, ThemeColorful, ThemeMinimal:
		return true
	}
	return false
}

// ValidLayout reports whether name belongs to the layout enum.
func ValidLayout(name string) bool {
	switch name {
	case LayoutHierarchical, LayoutRadial, LayoutTree,
		LayoutForceDirected, LayoutCircular, LayoutTimeline:
		return true
	}
	return false
}

// Warning records one recoverable resolution problem.
type Warning struct {
	Err    error  // one of the package sentinels
	Detail string // what happened and where
}

func (w Warning) String() string {
	return fmt.Sprintf("%v: %s", w.Err, w.Detail)
}
