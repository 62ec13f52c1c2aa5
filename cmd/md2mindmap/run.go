package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2mindmap "github.com/alnah/go-md2mindmap"
	"github.com/alnah/go-md2mindmap/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput = errors.New("usage: md2mindmap <input.md> [flags]")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// generator is the interface to the generation service.
type generator interface {
	Generate(ctx context.Context, input md2mindmap.Input) (*md2mindmap.Output, error)
}

// run reads the input document, resolves CLI config tiers, delegates to
// the service and writes the artifact. Warnings go to stderr after the
// output is produced; only an unreadable input or unwritable output is
// fatal.
func run(ctx context.Context, flags *cliFlags, args []string, svc generator, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return ErrMissingInput
	}
	inputPath := args[0]

	if !hasMarkdownExtension(inputPath) {
		fmt.Fprintf(stderr, "warning: %q doesn't have a typical markdown extension (.md, .markdown, .txt)\n", inputPath)
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", md2mindmap.ErrInputUnreadable, err)
	}

	input := md2mindmap.Input{
		Markdown:  string(content),
		Title:     titleFromPath(inputPath),
		CLIConfig: overlayFromFlags(flags),
	}

	var warns md2mindmap.Warnings

	if flags.configPath != "" {
		overlay, fileWarns, err := config.LoadFile(flags.configPath)
		if err != nil {
			// A bad -c file is recoverable: resolution continues with
			// the remaining tiers.
			warns.Add(md2mindmap.ErrMalformedConfigSource, "%v", err)
		} else {
			warns.Merge(convertWarnings(fileWarns))
			input.FileConfig = overlay
			if flags.verbose {
				fmt.Fprintf(stderr, "Loaded configuration from %s\n", flags.configPath)
			}
		}
	}

	out, err := svc.Generate(ctx, input)
	if err != nil {
		return err
	}
	warns.Merge(out.Warnings)

	outputPath, err := writeArtifact(flags.output, out.HTML)
	if err != nil {
		return err
	}

	for _, w := range warns {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Resolved: theme=%s layout=%s colors=%d plugins=%d\n",
			out.Config.Theme, out.Config.Layout, len(out.Config.Colors), len(out.Config.Plugins))
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// overlayFromFlags builds the highest-precedence config tier from the
// flags the operator actually set.
func overlayFromFlags(flags *cliFlags) *config.Overlay {
	o := &config.Overlay{}
	touched := false

	if flags.set["theme"] {
		o.Theme = &flags.theme
		touched = true
	}
	if flags.set["layout"] {
		o.Layout = &flags.layout
		touched = true
	}
	if flags.set["no-toolbar"] {
		disabled := false
		o.Toolbar = &disabled
		touched = true
	}
	if flags.set["max-width"] {
		o.MaxWidth = &flags.maxWidth
		touched = true
	}

	if flags.set["enable-only"] {
		// Everything off, then the listed plugins on.
		o.Plugins = map[string]bool{
			config.PluginMath:          false,
			config.PluginCodeHighlight: false,
			config.PluginEmoji:         false,
			config.PluginLinks:         false,
		}
		for _, name := range flags.enableOnly {
			o.Plugins[strings.TrimSpace(name)] = true
		}
		touched = true
	}
	if flags.set["disable-plugins"] {
		if o.Plugins == nil {
			o.Plugins = make(map[string]bool)
		}
		for _, name := range flags.disablePlugins {
			o.Plugins[strings.TrimSpace(name)] = false
		}
		touched = true
	}

	if !touched {
		return nil
	}
	return o
}

// writeArtifact validates the output base name and writes <name>.html,
// creating the parent directory when necessary.
func writeArtifact(baseName, html string) (string, error) {
	if strings.TrimSpace(baseName) == "" {
		return "", md2mindmap.ErrEmptyOutputName
	}
	outputPath := baseName + ".html"

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(html), 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return outputPath, nil
}

// hasMarkdownExtension reports whether the path carries a typical
// markdown extension.
func hasMarkdownExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}

// titleFromPath derives the artifact title from the input file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// convertWarnings maps config package warnings to the public taxonomy.
func convertWarnings(in []config.Warning) md2mindmap.Warnings {
	out := make(md2mindmap.Warnings, 0, len(in))
	for _, w := range in {
		sentinel := md2mindmap.ErrMalformedConfigSource
		switch w.Err {
		case config.ErrInvalidEnum:
			sentinel = md2mindmap.ErrInvalidEnumValue
		case config.ErrInvalidValue:
			sentinel = md2mindmap.ErrInvalidFieldValue
		}
		out = append(out, md2mindmap.Warning{Err: sentinel, Detail: w.Detail})
	}
	return out
}
