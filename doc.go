// Package md2mindmap converts a Markdown document into an interactive
// mind map: a self-contained HTML file embedding the heading tree as
// node/edge data for a client-side graph renderer.
//
// The pipeline is synchronous and single-pass: configuration resolution,
// heading tokenization, tree construction, content plugins, graph export,
// HTML rendering. Use the Service type as entry point:
//
//	svc := md2mindmap.New()
//	out, err := svc.Generate(ctx, md2mindmap.Input{Markdown: src})
//
// The cmd/md2mindmap binary wraps Service with a CLI.
package md2mindmap
