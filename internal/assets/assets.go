// Package assets provides the embedded HTML template and theme styles
// for the generated mindmap artifact.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrThemeNotFound    = errors.New("theme style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

//go:embed template.html
var templates embed.FS

//go:embed themes/*.css
var themes embed.FS

// Template returns the artifact HTML template source.
func Template() (string, error) {
	content, err := templates.ReadFile("template.html")
	if err != nil {
		return "", fmt.Errorf("%w: template.html", ErrTemplateNotFound)
	}
	return string(content), nil
}

// ThemeCSS returns the stylesheet for a theme by name.
// The name must not include the .css extension or path components.
func ThemeCSS(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}
	content, err := themes.ReadFile("themes/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	return string(content), nil
}

// validateAssetName rejects empty names and anything resembling a path.
func validateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
