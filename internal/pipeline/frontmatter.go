package pipeline

import (
	"strings"

	"github.com/mdpress/mdpress/internal/yamlutil"
)

// Metadata holds document metadata parsed from YAML front matter.
type Metadata struct {
	Title string `yaml:"title"`
}

// SplitFrontMatter separates ----delimited YAML front matter from the
// Markdown body. If the document does not start with a front matter
// delimiter, the raw front matter is empty and body is the full input.
//
// The closing delimiter must be --- alone on its own line: longer dash runs
// (horizontal rules) and lines merely starting with --- do not close the
// block. A missing closing delimiter is not an error: the document is
// treated as having no front matter, matching how most Markdown tools
// degrade.
func SplitFrontMatter(content string) (frontMatter, body string) {
	const delim = "---\n"

	// Normalize against CRLF input; the preprocessor has not run yet at
	// this point.
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, delim) {
		return "", content
	}

	rest := normalized[len(delim):]
	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		end := strings.IndexByte(line, '\n')
		if end >= 0 {
			line = line[:end]
		}

		if line == "---" {
			frontMatter = rest[:offset]
			if end < 0 {
				return frontMatter, ""
			}
			return frontMatter, rest[offset+end+1:]
		}

		if end < 0 {
			break
		}
		offset += end + 1
	}

	return "", content
}

// ParseMetadata decodes YAML front matter into Metadata.
// Empty input yields zero-value metadata, not an error. Unknown fields are
// ignored: front matter commonly carries keys this tool does not consume.
func ParseMetadata(frontMatter string) (Metadata, error) {
	var meta Metadata
	if strings.TrimSpace(frontMatter) == "" {
		return meta, nil
	}
	if err := yamlutil.Unmarshal([]byte(frontMatter), &meta); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}
