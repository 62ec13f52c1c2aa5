package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2mindmap/internal/decode"
)

// LoadFile reads an external config file and decodes it into an Overlay.
// The codec is chosen by extension: .yaml/.yml or .toml. A missing file
// is an error (the operator asked for it explicitly); a malformed file
// is a warning and the whole source is skipped.
func LoadFile(path string) (*Overlay, []Warning, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, nil, fmt.Errorf("reading config file: %w", err)
	}

	var o Overlay
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decode.TOML(data, &o)
	default: // .yaml, .yml, or anything else treated as YAML
		err = decode.YAMLStrict(data, &o)
	}
	if err != nil {
		return nil, []Warning{{
			Err:    ErrMalformedSource,
			Detail: fmt.Sprintf("config file %s: %s", path, firstLine(err.Error())),
		}}, nil
	}

	return &o, nil, nil
}
