package assets

import (
	"errors"
	"strings"
)

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// DefaultStyleName is the fallback style used for unrecognized names.
const DefaultStyleName = "default"

// StyleLoader defines the contract for loading CSS styles by name.
// Implementations may load from embedded assets, the filesystem, etc.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)
}

// ValidateAssetName rejects names with path separators, traversal
// sequences, or null bytes. Asset names address embedded files, so only
// bare names are legal.
func ValidateAssetName(name string) error {
	if name == "" {
		return ErrInvalidAssetName
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return ErrInvalidAssetName
	}
	return nil
}
