package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input file specified")
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// filePermissions for written output: rw-r--r--.
const filePermissions = 0o644

// run executes a single conversion: read input, convert, write output.
// Returns the output path on success for the confirmation line.
func run(ctx context.Context, flags *cliFlags, args []string, logger *slog.Logger, stdout io.Writer) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	inputPath := args[0]

	// Any readable file converts; the content is treated as Markdown
	// regardless of extension.
	mdContent, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	outputPath := resolveOutputPath(flags, inputPath)

	opts := []mdpress.Option{
		mdpress.WithTheme(flags.theme),
		mdpress.WithLogger(logger),
	}
	if flags.css != "" {
		opts = append(opts, mdpress.WithUserCSS(flags.css))
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.timeout)
		}
		opts = append(opts, mdpress.WithTimeout(d))
	}

	converter, err := mdpress.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := converter.Close(); cerr != nil {
			logger.Warn("closing converter", "error", cerr)
		}
	}()

	input := mdpress.Input{
		Markdown:    string(mdContent),
		Title:       inputStem(inputPath),
		SourceDir:   filepath.Dir(inputPath),
		PageNumbers: flags.pageNumbers,
		Page:        buildPageSettings(flags),
		HTMLOnly:    flags.htmlOnly,
	}
	if flags.toc {
		input.TOC = &mdpress.TOC{}
	}

	logger.Debug("converting", "input", inputPath, "output", outputPath, "theme", flags.theme)
	start := time.Now()

	result, err := converter.Convert(ctx, input)
	if err != nil {
		return err
	}

	output := result.PDF
	kind := "PDF"
	if flags.htmlOnly {
		output = result.HTML
		kind = "HTML"
	}

	if err := os.WriteFile(outputPath, output, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	logger.Debug("conversion finished", "duration", time.Since(start))
	fmt.Fprintf(stdout, "%s created: %s\n", kind, outputPath)
	return nil
}

// resolveOutputPath returns the explicit output path or derives one from
// the input path by replacing its extension.
func resolveOutputPath(flags *cliFlags, inputPath string) string {
	if flags.output != "" {
		return flags.output
	}
	ext := ".pdf"
	if flags.htmlOnly {
		ext = ".html"
	}
	return fileutil.ReplaceExt(inputPath, ext)
}

// buildPageSettings maps CLI flags to page settings.
func buildPageSettings(flags *cliFlags) *mdpress.PageSettings {
	page := mdpress.DefaultPageSettings()
	if flags.pageSize != "" {
		page.Size = flags.pageSize
	}
	if flags.margin != 0 {
		page.Margin = flags.margin
	}
	if flags.landscape {
		page.Orientation = mdpress.OrientationLandscape
	}
	return page
}

// inputStem returns the input file name without directory or extension,
// used as the document title when front matter provides none.
func inputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// browserHint returns actionable advice for browser launch failures, or ""
// when the error is unrelated. Containerized environments routinely need
// both settings.
func browserHint(err error) string {
	if !errors.Is(err, mdpress.ErrBrowserConnect) {
		return ""
	}

	var hints []string
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a pre-installed Chrome")
	}
	if os.Getenv("CI") == "" && fileutil.FileExists("/.dockerenv") {
		hints = append(hints, "set CI=true to disable the Chrome sandbox in containers")
	}

	if len(hints) == 0 {
		return ""
	}
	return "  hint: " + strings.Join(hints, "; ")
}
