package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Overlay is a partial configuration from one tier. Nil pointer fields
// are "not set by this tier". Colors replace as a whole value; Plugins
// merge key-by-key, since individual toggles are independent settings.
//
// The same shape decodes the external config file (flat document) and
// the frontmatter's nested mindmap block.
type Overlay struct {
	Theme  *string  `yaml:"theme" toml:"theme"`
	Layout *string  `yaml:"layout" toml:"layout"`
	Colors []string `yaml:"colors" toml:"colors"`

	MaxWidth          *int `yaml:"maxWidth" toml:"maxWidth"`
	LineWidth         *int `yaml:"lineWidth" toml:"lineWidth"`
	SpacingHorizontal *int `yaml:"spacingHorizontal" toml:"spacingHorizontal"`
	SpacingVertical   *int `yaml:"spacingVertical" toml:"spacingVertical"`

	Duration           *int `yaml:"duration" toml:"duration"`
	InitialExpandLevel *int `yaml:"initialExpandLevel" toml:"initialExpandLevel"`
	ColorFreezeLevel   *int `yaml:"colorFreezeLevel" toml:"colorFreezeLevel"`

	Zoom    *bool `yaml:"zoom" toml:"zoom"`
	Pan     *bool `yaml:"pan" toml:"pan"`
	Toolbar *bool `yaml:"toolbar" toml:"toolbar"`

	Plugins map[string]bool `yaml:"plugins" toml:"plugins"`
}

// Sources are the three optional tiers above the built-in defaults,
// lowest precedence first. A nil overlay means the tier is absent.
type Sources struct {
	File        *Overlay // external config file (-c/--config)
	Frontmatter *Overlay // embedded front-section of the document
	CLI         *Overlay // command-line overrides
}

// Resolve merges defaults and the three overlay tiers into one validated
// Config. Resolution is a pure function of its inputs: the same sources
// always produce the same record. Invalid values never abort; each emits
// a warning and the field keeps the next-lower-tier valid value.
func Resolve(srcs Sources) (Config, []Warning) {
	cfg := Default()
	var warns []Warning

	apply(&cfg, srcs.File, "config file", &warns)
	apply(&cfg, srcs.Frontmatter, "frontmatter", &warns)
	apply(&cfg, srcs.CLI, "command line", &warns)

	return cfg, warns
}

// apply folds one tier into cfg, validating each field independently.
func apply(cfg *Config, o *Overlay, source string, warns *[]Warning) {
	if o == nil {
		return
	}

	if o.Theme != nil {
		if ValidTheme(*o.Theme) {
			cfg.Theme = *o.Theme
			// A tier that picks a theme without its own colors adopts
			// the theme palette as that tier's colors value.
			if o.Colors == nil {
				cfg.Colors = Palette(*o.Theme)
			}
		} else {
			warn(warns, ErrInvalidEnum, source, "theme %q is not one of default, dark, colorful, minimal", *o.Theme)
		}
	}

	if o.Layout != nil {
		if ValidLayout(*o.Layout) {
			cfg.Layout = *o.Layout
		} else {
			warn(warns, ErrInvalidEnum, source, "layout %q is not one of hierarchical, radial, tree, force_directed, circular, timeline", *o.Layout)
		}
	}

	if o.Colors != nil {
		if bad, ok := firstInvalidColor(o.Colors); !ok {
			warn(warns, ErrInvalidValue, source, "colors entry %q is not a valid color; list ignored", bad)
		} else {
			cfg.Colors = append([]string(nil), o.Colors...)
		}
	}

	applyPositive(&cfg.MaxWidth, o.MaxWidth, "maxWidth", source, warns)
	applyPositive(&cfg.LineWidth, o.LineWidth, "lineWidth", source, warns)
	applyPositive(&cfg.SpacingHorizontal, o.SpacingHorizontal, "spacingHorizontal", source, warns)
	applyPositive(&cfg.SpacingVertical, o.SpacingVertical, "spacingVertical", source, warns)

	if o.Duration != nil {
		if *o.Duration >= 0 {
			cfg.Duration = *o.Duration
		} else {
			warn(warns, ErrInvalidValue, source, "duration must be >= 0, got %d", *o.Duration)
		}
	}
	if o.InitialExpandLevel != nil {
		if *o.InitialExpandLevel >= -1 {
			cfg.InitialExpandLevel = *o.InitialExpandLevel
		} else {
			warn(warns, ErrInvalidValue, source, "initialExpandLevel must be >= -1, got %d", *o.InitialExpandLevel)
		}
	}
	if o.ColorFreezeLevel != nil {
		if *o.ColorFreezeLevel >= 0 {
			cfg.ColorFreezeLevel = *o.ColorFreezeLevel
		} else {
			warn(warns, ErrInvalidValue, source, "colorFreezeLevel must be >= 0, got %d", *o.ColorFreezeLevel)
		}
	}

	if o.Zoom != nil {
		cfg.Zoom = *o.Zoom
	}
	if o.Pan != nil {
		cfg.Pan = *o.Pan
	}
	if o.Toolbar != nil {
		cfg.Toolbar = *o.Toolbar
	}

	for name, enabled := range o.Plugins {
		cfg.Plugins[name] = enabled
	}
}

// applyPositive sets dst from src when src is a positive integer.
func applyPositive(dst *int, src *int, field, source string, warns *[]Warning) {
	if src == nil {
		return
	}
	if *src > 0 {
		*dst = *src
		return
	}
	warn(warns, ErrInvalidValue, source, "%s must be positive, got %d", field, *src)
}

// firstInvalidColor returns the first entry that does not parse as a hex
// color; ok is true when every entry is valid.
func firstInvalidColor(colors []string) (bad string, ok bool) {
	for _, c := range colors {
		s := strings.TrimSpace(c)
		if !strings.HasPrefix(s, "#") {
			return c, false
		}
		if _, err := colorful.Hex(s); err != nil {
			return c, false
		}
	}
	return "", true
}

func warn(warns *[]Warning, sentinel error, source, format string, args ...any) {
	*warns = append(*warns, Warning{
		Err:    sentinel,
		Detail: source + ": " + fmt.Sprintf(format, args...),
	})
}
