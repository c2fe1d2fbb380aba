// Package pipeline implements the Markdown-to-HTML stages of the converter:
//   - front matter splitting and metadata parsing
//   - Markdown preprocessing (fence spacing, table normalization, image alt fixup)
//   - Markdown to HTML conversion via Goldmark with syntax highlighting
//   - callout blockquote rewriting
//   - document skeleton wrapping, CSS and TOC injection
//   - relative asset path rewriting
//
// PDF generation is handled separately by the root mdpress package using
// headless Chrome (go-rod). This separation keeps the pipeline focused on
// document structure and content, while PDF rendering handles page layout,
// margins, and browser-based rendering concerns.
package pipeline
