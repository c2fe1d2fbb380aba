package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// ImageAltPlaceholder fills in empty image alt text during preprocessing.
const ImageAltPlaceholder = "Image"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fenced code block delimiter (backticks or tildes)
	fenceDelimiter = regexp.MustCompile("^(```|~~~)")

	// Runs of adjacent table cell delimiters
	repeatedPipes = regexp.MustCompile(`\|{2,}`)

	// Image reference with empty alt text
	emptyAltImage = regexp.MustCompile(`!\[\]\(([^)]+)\)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies deterministic text fixups before
// CommonMark conversion. All transformations are idempotent: applying the
// preprocessor twice yields the same output as applying it once.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = applyLineFixups(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// applyLineFixups walks the document line by line, tracking fenced code
// block state, and applies four fixups:
//
//   - exactly one blank line before an opening fence, so the parser never
//     merges a fence into the preceding paragraph;
//   - a blank line before a closing fence;
//   - outside fences: collapse repeated table delimiters and fill in empty
//     image alt text;
//   - outside fences: compress runs of blank lines to a single blank line.
//
// Fenced content itself is never modified, which keeps the table, image,
// and blank-line fixups from corrupting code samples that contain |,
// ![]( sequences, or deliberate blank runs.
func applyLineFixups(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines)+4)

	inFence := false
	for _, line := range lines {
		if fenceDelimiter.MatchString(line) {
			if inFence {
				// Closing fence: ensure a blank line separates it from the
				// last content line.
				if len(out) > 0 && !isBlankLine(out[len(out)-1]) {
					out = append(out, "")
				}
			} else {
				// Opening fence: normalize preceding blank lines to exactly one.
				for len(out) > 0 && isBlankLine(out[len(out)-1]) {
					out = out[:len(out)-1]
				}
				if len(out) > 0 {
					out = append(out, "")
				}
			}
			out = append(out, line)
			inFence = !inFence
			continue
		}

		if inFence {
			out = append(out, line)
			continue
		}

		if isBlankLine(line) {
			if len(out) > 0 && isBlankLine(out[len(out)-1]) {
				continue
			}
			out = append(out, line)
			continue
		}

		line = collapseTableDelimiters(line)
		line = fillEmptyImageAlt(line)
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// collapseTableDelimiters reduces runs of adjacent | characters to a single
// delimiter. Doubled pipes usually come from spreadsheet exports and break
// GFM table parsing.
func collapseTableDelimiters(line string) string {
	if !strings.Contains(line, "||") {
		return line
	}
	return repeatedPipes.ReplaceAllString(line, "|")
}

// fillEmptyImageAlt rewrites ![](url) to carry a placeholder alt text.
// The URL, including any surrounding whitespace, is left unchanged.
func fillEmptyImageAlt(line string) string {
	return emptyAltImage.ReplaceAllString(line, "!["+ImageAltPlaceholder+"]($1)")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
