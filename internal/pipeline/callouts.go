package pipeline

import (
	"regexp"
	"strings"
)

// Callout blockquotes use the GitHub alert syntax:
//
//	> [!NOTE]
//	> Body text.
//
// Goldmark renders these as ordinary blockquotes with the marker as the
// first paragraph text. RewriteCallouts runs over that rendered output, so
// the pattern below only ever matches HTML this pipeline produced itself.
var calloutPattern = regexp.MustCompile(
	`(?s)<blockquote>\s*<p>\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]\s*(?:<br\s*/?>\s*)?(.*?)</blockquote>`,
)

// calloutTitles maps marker keywords to display titles.
var calloutTitles = map[string]string{
	"NOTE":      "Note",
	"TIP":       "Tip",
	"IMPORTANT": "Important",
	"WARNING":   "Warning",
	"CAUTION":   "Caution",
}

// RewriteCallouts converts callout blockquotes in rendered HTML into
// classed divs that themes can style distinctly, e.g.:
//
//	<div class="callout callout-note"><p class="callout-title">Note</p>...</div>
//
// HTML without callout markers is returned unchanged.
func RewriteCallouts(htmlContent string) string {
	if !strings.Contains(htmlContent, "[!") {
		return htmlContent
	}

	return calloutPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		parts := calloutPattern.FindStringSubmatch(match)
		if parts == nil {
			return match
		}
		kind := parts[1]
		body := parts[2]

		var buf strings.Builder
		buf.WriteString(`<div class="callout callout-`)
		buf.WriteString(strings.ToLower(kind))
		buf.WriteString(`"><p class="callout-title">`)
		buf.WriteString(calloutTitles[kind])
		buf.WriteString(`</p><p>`)
		buf.WriteString(body)
		buf.WriteString(`</div>`)
		return buf.String()
	})
}
