package mdpress

import (
	"strings"
	"testing"
)

func TestBuildPDFOptions_Defaults(t *testing.T) {
	t.Parallel()

	got := buildPDFOptions(nil)

	if got.Landscape {
		t.Error("default orientation should be portrait")
	}
	if *got.PaperWidth != 8.5 || *got.PaperHeight != 11 {
		t.Errorf("paper = %vx%v, want 8.5x11", *got.PaperWidth, *got.PaperHeight)
	}
	if *got.MarginTop != DefaultMargin || *got.MarginBottom != DefaultMargin {
		t.Errorf("margins = %v/%v, want %v", *got.MarginTop, *got.MarginBottom, DefaultMargin)
	}
	if !got.PrintBackground {
		t.Error("PrintBackground should be enabled")
	}
	if got.DisplayHeaderFooter {
		t.Error("header/footer should be off without page numbers")
	}
}

func TestBuildPDFOptions_LandscapeSwapsDimensions(t *testing.T) {
	t.Parallel()

	got := buildPDFOptions(&pdfOptions{
		Page: &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 1.0},
	})

	if !got.Landscape {
		t.Error("Landscape flag not set")
	}
	if *got.PaperWidth != 11.69 || *got.PaperHeight != 8.27 {
		t.Errorf("paper = %vx%v, want 11.69x8.27", *got.PaperWidth, *got.PaperHeight)
	}
	if *got.MarginTop != 1.0 {
		t.Errorf("margin = %v, want 1.0", *got.MarginTop)
	}
}

func TestBuildPDFOptions_PageSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size   string
		width  float64
		height float64
	}{
		{PageSizeLetter, 8.5, 11},
		{PageSizeA4, 8.27, 11.69},
		{PageSizeLegal, 8.5, 14},
		{"Letter", 8.5, 11}, // case-insensitive
		{"unknown", 8.5, 11},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.size, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(&pdfOptions{
				Page: &PageSettings{Size: tt.size, Orientation: OrientationPortrait, Margin: 0.5},
			})
			if *got.PaperWidth != tt.width || *got.PaperHeight != tt.height {
				t.Errorf("paper = %vx%v, want %vx%v", *got.PaperWidth, *got.PaperHeight, tt.width, tt.height)
			}
		})
	}
}

func TestBuildPDFOptions_PageNumbers(t *testing.T) {
	t.Parallel()

	got := buildPDFOptions(&pdfOptions{PageNumbers: true})

	// The @page rules in the stylesheet own the counter; Chrome's native
	// footer stays off so page 1 suppression works and nothing renders twice.
	if got.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter must stay off, the @page rules render the counter")
	}
	if got.FooterTemplate != "" {
		t.Errorf("footer template = %q, want none", got.FooterTemplate)
	}
	if *got.MarginBottom != marginBottomWithFooter {
		t.Errorf("bottom margin = %v, want %v to fit the counter box", *got.MarginBottom, marginBottomWithFooter)
	}
	if *got.MarginTop != DefaultMargin {
		t.Errorf("top margin = %v, want %v", *got.MarginTop, DefaultMargin)
	}
}

func TestBuildPDFOptions_LargeMarginKeptWithFooter(t *testing.T) {
	t.Parallel()

	got := buildPDFOptions(&pdfOptions{
		Page:        &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 1.5},
		PageNumbers: true,
	})

	if *got.MarginBottom != 1.5 {
		t.Errorf("bottom margin = %v, want 1.5 (already larger than footer minimum)", *got.MarginBottom)
	}
}

func TestApplyStyleLayers(t *testing.T) {
	t.Parallel()

	base := "<html><body><p>x</p></body></html>"

	t.Run("empty layers unchanged", func(t *testing.T) {
		t.Parallel()

		if got := applyStyleLayers(base, nil); got != base {
			t.Errorf("got %q, want unchanged", got)
		}
		if got := applyStyleLayers(base, []string{""}); got != base {
			t.Errorf("blank layer should be skipped, got %q", got)
		}
	})

	t.Run("layers appended before body close in order", func(t *testing.T) {
		t.Parallel()

		got := applyStyleLayers(base, []string{"p{color:red}", "p{color:blue}"})

		redIdx := strings.Index(got, "p{color:red}")
		blueIdx := strings.Index(got, "p{color:blue}")
		bodyIdx := strings.Index(got, "</body>")
		if redIdx < 0 || blueIdx < 0 {
			t.Fatalf("layers missing:\n%s", got)
		}
		if !(redIdx < blueIdx && blueIdx < bodyIdx) {
			t.Errorf("expected red, blue, </body> in order; got indexes %d %d %d", redIdx, blueIdx, bodyIdx)
		}
	})

	t.Run("layer CSS sanitized", func(t *testing.T) {
		t.Parallel()

		got := applyStyleLayers(base, []string{"p{} </style><script>"})
		if strings.Contains(got, "</style><script>") {
			t.Errorf("unsanitized CSS escaped the style block:\n%s", got)
		}
	})

	t.Run("no body tag appends", func(t *testing.T) {
		t.Parallel()

		got := applyStyleLayers("<p>x</p>", []string{"p{}"})
		if !strings.HasSuffix(got, "<style>p{}</style>") {
			t.Errorf("got %q", got)
		}
	})
}
