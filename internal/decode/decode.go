// Package decode wraps YAML and TOML parsing to isolate the external
// codec dependencies. Config sources pick a codec by file extension;
// callers never import the codec libraries directly.
package decode

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// MaxInputSize limits config input to prevent memory exhaustion (1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("decode: nil or empty data")
	ErrNilDestination = errors.New("decode: nil destination pointer")
	ErrInputTooLarge  = errors.New("decode: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// YAML unmarshals YAML data into v, ignoring unknown fields. Used for
// document frontmatter, which may carry keys unrelated to the mindmap.
func YAML(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// YAMLStrict unmarshals YAML data into v, rejecting unknown fields.
// Used for dedicated config files where a typo should not pass silently.
func YAMLStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// TOML unmarshals TOML data into v, rejecting unknown fields.
func TOML(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
