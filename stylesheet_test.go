package mdpress

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdpress/mdpress/internal/pipeline"
)

func TestResolveStylesheet_Themes(t *testing.T) {
	t.Parallel()

	for _, theme := range []string{ThemeDefault, ThemeGitHub, ThemeAcademic} {
		theme := theme
		t.Run(theme, func(t *testing.T) {
			t.Parallel()

			c, err := NewConverter(WithTheme(theme))
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			defer c.Close()

			if c.resolvedCSS == "" {
				t.Fatal("resolved stylesheet is empty")
			}
			if !strings.Contains(c.resolvedCSS, "body") {
				t.Error("theme rules missing from resolved stylesheet")
			}
			if !strings.Contains(c.resolvedCSS, "."+pipeline.HighlightClassPrefix) {
				t.Error("highlighter rules missing from resolved stylesheet")
			}
		})
	}
}

func TestResolveStylesheet_UnknownThemeFallsBack(t *testing.T) {
	t.Parallel()

	c, err := NewConverter(WithTheme("no-such-theme"))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer c.Close()

	if c.resolvedCSS == "" {
		t.Fatal("fallback stylesheet is empty")
	}
}

func TestResolveStylesheet_ThemeNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper, err := NewConverter(WithTheme("GitHub"))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer upper.Close()

	lower, err := NewConverter(WithTheme("github"))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer lower.Close()

	if upper.resolvedCSS != lower.resolvedCSS {
		t.Error("theme name casing changed the resolved stylesheet")
	}
}

func TestResolveStylesheet_UserCSSAppendedLast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	userPath := filepath.Join(dir, "custom.css")
	const userRule = "h1 { color: rebeccapurple; }"
	if err := os.WriteFile(userPath, []byte(userRule), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewConverter(WithUserCSS(userPath))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer c.Close()

	userIdx := strings.Index(c.resolvedCSS, userRule)
	if userIdx < 0 {
		t.Fatal("user rule missing from resolved stylesheet")
	}
	bodyIdx := strings.Index(c.resolvedCSS, "body")
	if userIdx < bodyIdx {
		t.Error("user rules must come after theme rules")
	}
}

func TestResolveStylesheet_MissingUserCSSDegrades(t *testing.T) {
	t.Parallel()

	c, err := NewConverter(WithUserCSS("/nonexistent/custom.css"))
	if err != nil {
		t.Fatalf("NewConverter() should degrade on unreadable user CSS, got error %v", err)
	}
	defer c.Close()

	if c.resolvedCSS == "" {
		t.Error("built-in styles should survive a missing user CSS file")
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css := highlightCSS()
	if css == "" {
		t.Fatal("highlightCSS() returned empty rules")
	}
	if !strings.Contains(css, "."+pipeline.HighlightClassPrefix) {
		t.Errorf("generated rules do not use the %q class prefix", pipeline.HighlightClassPrefix)
	}
}
