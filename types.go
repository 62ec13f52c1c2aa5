package md2mindmap

import (
	"github.com/alnah/go-md2mindmap/internal/config"
)

// defaultTitle labels the synthetic root when no title is supplied.
const defaultTitle = "Mind Map"

// Input contains generation parameters for one run.
type Input struct {
	// Markdown is the raw document source. An empty document or one
	// without headings is valid and yields a root-only map.
	Markdown string

	// Title labels the synthetic root and the artifact page.
	// Empty means defaultTitle.
	Title string

	// FileConfig is the external config file tier (optional).
	FileConfig *config.Overlay

	// CLIConfig is the command-line override tier (optional).
	CLIConfig *config.Overlay
}

// Output is the result of one run.
type Output struct {
	// HTML is the self-contained presentation artifact.
	HTML string

	// Graph is the exported node/edge snapshot embedded in HTML.
	Graph *Graph

	// Config is the resolved configuration used for the run.
	Config config.Config

	// Warnings collects every recoverable condition, in order.
	Warnings Warnings
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the built-in plugin registry, allowing callers
// to register custom content transformers.
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("md2mindmap: WithRegistry registry must not be nil")
	}
	return func(s *Service) {
		s.registry = r
	}
}
