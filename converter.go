package mdpress

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mdpress/mdpress/internal/assets"
	"github.com/mdpress/mdpress/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
)

// Converter orchestrates the Markdown-to-PDF conversion pipeline.
// Create with NewConverter, use Convert for conversion, and Close when done.
type Converter struct {
	cfg           converterConfig
	logger        *slog.Logger
	styleLoader   assets.StyleLoader
	resolvedCSS   string
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	tocInjector   pipeline.TOCInjector
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTheme, WithUserCSS,
// WithTimeout, WithLogger). Returns an error if the theme stylesheet
// cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		styleLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		tocInjector:   pipeline.NewTOCInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.cfg.logger
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	css, err := c.resolveStylesheet()
	if err != nil {
		return nil, err
	}
	c.resolvedCSS = css

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the result containing the
// assembled HTML and the rendered PDF. The context is used for cancellation
// and timeout. If input.HTMLOnly is true, PDF rendering is skipped.
//
// Any stage failure is wrapped in ErrConversionFailed with the original
// cause preserved for errors.Is/errors.As.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	res, err := c.convert(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}
	return res, nil
}

func (c *Converter) convert(ctx context.Context, input Input) (*ConvertResult, error) {
	// Split front matter before any text transformation so metadata is
	// never mangled by preprocessing.
	frontMatter, body := pipeline.SplitFrontMatter(input.Markdown)
	meta, err := pipeline.ParseMetadata(frontMatter)
	if err != nil {
		// Malformed front matter degrades to "no metadata": the document
		// still converts, it just loses its title.
		c.logger.Warn("ignoring malformed front matter", "error", err)
		meta = pipeline.Metadata{}
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML fragment
	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Rewrite callout blockquotes into classed divs
	fragment = pipeline.RewriteCallouts(fragment)

	// Wrap in the document skeleton. The document's own front matter title
	// wins; Input.Title is the caller's fallback (the CLI passes the input
	// file stem).
	title := meta.Title
	if title == "" {
		title = input.Title
	}
	if title == "" {
		title = "Document"
	}
	htmlContent := pipeline.WrapDocument(title, fragment)

	// Rewrite relative asset paths to absolute file:// URLs
	if input.SourceDir != "" {
		htmlContent, err = pipeline.ResolveAssetPaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("resolving asset paths: %w", err)
		}
	}

	// Build the embedded stylesheet: resolved theme stack first, then the
	// page-number rules when requested.
	cssContent := c.resolvedCSS
	if input.PageNumbers {
		cssContent += pageNumbersCSS
	}

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Inject TOC (if requested); a document without headings is a no-op.
	if input.TOC != nil {
		tocData := &pipeline.TOCData{
			Title:    input.TOC.Title,
			MaxDepth: tocMaxDepth(input.TOC),
		}
		htmlContent, err = c.tocInjector.InjectTOC(ctx, htmlContent, tocData)
		if err != nil {
			return nil, fmt.Errorf("injecting TOC: %w", err)
		}
	}

	res := &ConvertResult{HTML: []byte(htmlContent)}

	if input.HTMLOnly {
		return res, nil
	}

	// Apply the resolved stylesheet a second time as an explicit layer, with
	// the landscape override last so it has the highest precedence.
	layers := []string{cssContent}
	if input.Page != nil && isLandscape(input.Page) {
		layers = append(layers, landscapeCSS)
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Page:        input.Page,
		PageNumbers: input.PageNumbers,
		StyleLayers: layers,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a trust boundary for direct library users who build Input
// manually; CLI flag values converge here as well.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.TOC.Validate(); err != nil {
		return err
	}
	return nil
}

// tocMaxDepth resolves the configured TOC depth, defaulting when unset.
func tocMaxDepth(t *TOC) int {
	if t == nil || t.MaxDepth == 0 {
		return DefaultTOCMaxDepth
	}
	return t.MaxDepth
}

// isLandscape reports whether page settings request landscape orientation.
func isLandscape(p *PageSettings) bool {
	return p != nil && strings.EqualFold(p.Orientation, OrientationLandscape)
}
