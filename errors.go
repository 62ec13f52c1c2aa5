package md2mindmap

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInputUnreadable is the only fatal condition: the source document
	// could not be read at all.
	ErrInputUnreadable = errors.New("input file cannot be read")

	ErrEmptyOutputName = errors.New("output name cannot be empty")
	ErrRenderTemplate  = errors.New("artifact template rendering failed")

	// Recoverable conditions, surfaced as warnings.
	ErrMalformedConfigSource  = errors.New("malformed config source")
	ErrInvalidEnumValue       = errors.New("invalid enum value")
	ErrInvalidFieldValue      = errors.New("invalid field value")
	ErrHeadingLevelOutOfRange = errors.New("heading level out of range")
	ErrPluginFailure          = errors.New("plugin failed")

	// Plugin registry errors.
	ErrUnknownPlugin   = errors.New("unknown plugin")
	ErrDuplicatePlugin = errors.New("plugin already registered")
)
