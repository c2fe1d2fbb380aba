// Package mdpress converts Markdown documents to styled, paginated PDFs.
//
// The pipeline reads Markdown, applies text-level fixups, converts it to
// HTML via Goldmark with syntax highlighting, embeds a theme stylesheet,
// optionally injects a table of contents and page numbering, and renders
// the result with headless Chrome.
//
// Basic usage:
//
//	c, err := mdpress.NewConverter(mdpress.WithTheme("github"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	res, err := c.Convert(ctx, mdpress.Input{Markdown: "# Hello"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("hello.pdf", res.PDF, 0o644)
package mdpress
