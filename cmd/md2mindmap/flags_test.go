package main

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"notes.md",
		"--output", "out/map",
		"--theme", "dark",
		"--disable-plugins", "emoji,math",
		"--no-toolbar",
		"-q",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(args) != 1 || args[0] != "notes.md" {
		t.Errorf("positional args = %v, want [notes.md]", args)
	}
	if flags.output != "out/map" {
		t.Errorf("output = %q, want out/map", flags.output)
	}
	if flags.theme != "dark" {
		t.Errorf("theme = %q, want dark", flags.theme)
	}
	if len(flags.disablePlugins) != 2 || flags.disablePlugins[0] != "emoji" || flags.disablePlugins[1] != "math" {
		t.Errorf("disablePlugins = %v, want [emoji math]", flags.disablePlugins)
	}
	if !flags.noToolbar || !flags.quiet {
		t.Errorf("bool flags not set: noToolbar=%v quiet=%v", flags.noToolbar, flags.quiet)
	}
}

func TestParseFlagsTracksExplicitlySetFlags(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"notes.md", "--theme", "dark"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !flags.set["theme"] {
		t.Errorf("theme should be recorded as set")
	}
	// Defaults are not "set": they must never override lower config tiers.
	for _, name := range []string{"layout", "max-width", "no-toolbar", "output"} {
		if flags.set[name] {
			t.Errorf("flag %q recorded as set without being supplied", name)
		}
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"notes.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flags.output != "mindmap" {
		t.Errorf("default output = %q, want mindmap", flags.output)
	}
	if flags.theme != "" || flags.layout != "" {
		t.Errorf("enum flags should default empty: theme=%q layout=%q", flags.theme, flags.layout)
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want one positional", args)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--no-such-flag"}); err == nil {
		t.Fatalf("want error for unknown flag")
	}
}
