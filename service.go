package md2mindmap

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2mindmap/internal/config"
)

// Service orchestrates the markdown-to-mindmap pipeline: config
// resolution, heading tokenization, tree construction, content plugins,
// graph export, HTML rendering.
type Service struct {
	tokenizer tokenizer
	registry  *Registry
	converter htmlConverter
}

// New creates a Service with the built-in tokenizer, plugin registry and
// document renderer. Use options to customize behavior.
func New(opts ...Option) *Service {
	s := &Service{
		tokenizer: newGoldmarkTokenizer(),
		registry:  NewRegistry(),
		converter: newGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline. Only rendering and cancellation can
// fail; every recoverable condition lands in Output.Warnings instead.
func (s *Service) Generate(ctx context.Context, input Input) (*Output, error) {
	title := input.Title
	if title == "" {
		title = defaultTitle
	}

	var warns Warnings

	// Frontmatter is both a config tier and content to strip.
	fmOverlay, body, fmWarns := config.ExtractFrontmatter(input.Markdown)
	warns.Merge(convertConfigWarnings(fmWarns))

	cfg, resWarns := config.Resolve(config.Sources{
		File:        input.FileConfig,
		Frontmatter: fmOverlay,
		CLI:         input.CLIConfig,
	})
	warns.Merge(convertConfigWarnings(resWarns))

	tokens, err := s.tokenizer.Tokenize(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("tokenizing headings: %w", err)
	}

	tree, treeWarns := BuildTree(tokens, body, title)
	warns.Merge(treeWarns)

	pipeline := NewPipeline(s.registry, cfg.Plugins)
	pluginAssets, pluginWarns := pipeline.Apply(tree)
	warns.Merge(pluginWarns)

	graph := ExportGraph(tree, cfg)

	html, err := renderArtifact(ctx, s.converter, graph, cfg, body, title, pluginAssets)
	if err != nil {
		return nil, err
	}

	return &Output{
		HTML:     html,
		Graph:    graph,
		Config:   cfg,
		Warnings: warns,
	}, nil
}

// convertConfigWarnings maps internal config warnings onto the public
// sentinel taxonomy.
func convertConfigWarnings(in []config.Warning) Warnings {
	out := make(Warnings, 0, len(in))
	for _, w := range in {
		out = append(out, Warning{Err: convertConfigSentinel(w.Err), Detail: w.Detail})
	}
	return out
}

func convertConfigSentinel(err error) error {
	switch err {
	case config.ErrMalformedSource:
		return ErrMalformedConfigSource
	case config.ErrInvalidEnum:
		return ErrInvalidEnumValue
	case config.ErrInvalidValue:
		return ErrInvalidFieldValue
	default:
		return err
	}
}
