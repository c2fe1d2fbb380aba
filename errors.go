package mdpress

import (
	"errors"

	"github.com/mdpress/mdpress/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrConversionFailed = errors.New("conversion failed")
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// TOC validation errors.
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Asset loading errors.
	ErrStyleNotFound = errors.New("style not found")
)

// ErrHTMLConversion indicates Markdown to HTML conversion failed. It is the
// same value the pipeline wraps, so errors.Is matches at either level.
var ErrHTMLConversion = pipeline.ErrHTMLConversion
