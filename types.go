package mdpress

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Built-in theme names.
const (
	ThemeDefault  = "default"
	ThemeGitHub   = "github"
	ThemeAcademic = "academic"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// DefaultTOCMaxDepth is the deepest heading level included in the TOC.
const DefaultTOCMaxDepth = 3

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// TOC configures table of contents generation.
type TOC struct {
	Title    string // heading above the TOC block (default: "Table of Contents")
	MaxDepth int    // deepest heading level included (default: 3)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	if t.MaxDepth < 0 || t.MaxDepth > 6 {
		return fmt.Errorf("%w: %d (must be between 1 and 6)", ErrInvalidTOCDepth, t.MaxDepth)
	}
	return nil
}

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown    string        // Markdown content (required)
	Title       string        // Fallback title when front matter has none ("" = "Document")
	SourceDir   string        // Base directory for resolving relative asset paths
	TOC         *TOC          // Table of contents (nil = none)
	PageNumbers bool          // Bottom-center page counter, first page suppressed
	Page        *PageSettings // Page settings (nil = defaults)
	HTMLOnly    bool          // Skip PDF rendering, return assembled HTML only
}

// ConvertResult holds the output of a conversion.
// HTML is always populated; PDF is empty when Input.HTMLOnly is set.
type ConvertResult struct {
	HTML []byte
	PDF  []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	theme       string
	userCSSPath string
	timeout     time.Duration
	logger      *slog.Logger
}

// defaultTimeout bounds a single PDF render. Headless Chrome can wedge on
// pathological documents, so renders are never left unbounded.
const defaultTimeout = 2 * time.Minute

// WithTheme selects a built-in theme by name.
// Unrecognized names fall back to the default theme at resolution time.
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithUserCSS appends rules from a user stylesheet file after the theme and
// highlighter rules. An unreadable file degrades to a logged warning.
func WithUserCSS(path string) Option {
	return func(c *Converter) {
		c.cfg.userCSSPath = path
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpress: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
// The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}
