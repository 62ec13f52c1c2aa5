package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the generate run.
type cliFlags struct {
	output     string
	configPath string

	theme     string
	layout    string
	noToolbar bool
	maxWidth  int

	disablePlugins []string
	enableOnly     []string

	quiet   bool
	verbose bool

	// set tracks which flags were supplied explicitly, so unset flags
	// never override lower config tiers.
	set map[string]bool
}

// newFlagSet wires the flag definitions onto a pflag set.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2mindmap", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "mindmap", "output base name (without .html)")
	fs.StringVarP(&f.configPath, "config", "c", "", "config file path (.yaml, .yml or .toml)")
	fs.StringVarP(&f.theme, "theme", "t", "", "theme: default, dark, colorful, minimal")
	fs.StringVarP(&f.layout, "layout", "l", "", "layout: hierarchical, radial, tree, force_directed, circular, timeline")
	fs.BoolVar(&f.noToolbar, "no-toolbar", false, "disable the toolbar")
	fs.IntVar(&f.maxWidth, "max-width", 0, "maximum node width in pixels")
	fs.StringSliceVar(&f.disablePlugins, "disable-plugins", nil, "disable specific plugins (math, code-highlight, emoji, links)")
	fs.StringSliceVar(&f.enableOnly, "enable-only", nil, "enable only the listed plugins")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolution details")

	return fs
}

// parseFlags parses CLI arguments and returns the flags plus positional
// arguments (the input file path).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{set: make(map[string]bool)}
	fs := newFlagSet(f)
	fs.Usage = func() { printUsage(fs, os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}

// printUsage writes the usage text.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: md2mindmap <input.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate an interactive mind map HTML file from a Markdown document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
