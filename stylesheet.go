package mdpress

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mdpress/mdpress/internal/assets"
	"github.com/mdpress/mdpress/internal/pipeline"
)

// highlightStyleName selects the chroma color scheme used to generate
// highlight rules. Matches the light background of all three themes.
const highlightStyleName = "github"

// pageNumbersCSS adds a bottom-center running page counter to every page
// except the first. Injected only when page numbering is requested.
const pageNumbersCSS = `
/* Page numbers */
@page {
  @bottom-center {
    content: counter(page);
    font-size: 10pt;
    color: #666;
  }
}
@page :first {
  @bottom-center {
    content: '';
  }
}
`

// landscapeCSS flips the page orientation. Layered after all other styles
// so it takes highest precedence.
const landscapeCSS = `@page { size: landscape; }`

// resolveStylesheet composes the final stylesheet text:
// theme preset first, highlighter rules second, user overrides last, so
// later rules win under normal cascade semantics.
//
// An unrecognized theme name falls back to the default preset. A supplied
// but unreadable user CSS file degrades to a logged warning; conversion
// proceeds with built-in styles only.
func (c *Converter) resolveStylesheet() (string, error) {
	name := strings.ToLower(c.cfg.theme)
	if name == "" {
		name = ThemeGitHub
	}

	base, err := c.styleLoader.LoadStyle(name)
	if err != nil {
		c.logger.Warn("unknown theme, using default", "theme", name)
		base, err = c.styleLoader.LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
	}

	css := base + "\n" + highlightCSS()

	if c.cfg.userCSSPath != "" {
		content, err := os.ReadFile(c.cfg.userCSSPath) // #nosec G304 -- user-provided path
		if err != nil {
			c.logger.Warn("could not load custom CSS, proceeding without it",
				"path", c.cfg.userCSSPath, "error", err)
		} else {
			css += "\n/* User overrides */\n" + string(content)
			c.logger.Debug("loaded custom CSS", "path", c.cfg.userCSSPath)
		}
	}

	return css, nil
}

// highlightCSS generates stylesheet rules for highlighted code blocks.
// The formatter options mirror those used by the Markdown converter, so
// generated class names always match the emitted HTML.
func highlightCSS() string {
	style := styles.Get(highlightStyleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(pipeline.HighlightClassPrefix),
	)

	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		// WriteCSS only fails on writer errors; a bytes.Buffer cannot fail.
		return ""
	}
	return buf.String()
}
