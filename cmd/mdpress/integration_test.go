package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRun_Integration performs a full Markdown to PDF conversion through
// the CLI entry point. It needs headless Chrome, so it only runs when
// MDPRESS_INTEGRATION=1 is set.
func TestRun_Integration(t *testing.T) {
	if os.Getenv("MDPRESS_INTEGRATION") != "1" {
		t.Skip("set MDPRESS_INTEGRATION=1 to run browser integration tests")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "report.md")
	md := "---\ntitle: Report\n---\n# Title\n\n```python\nprint(1)\n```\n"
	if err := os.WriteFile(input, []byte(md), 0o644); err != nil {
		t.Fatal(err)
	}

	flags := defaultFlags()
	flags.theme = "academic"

	var stdout bytes.Buffer
	if err := run(context.Background(), flags, []string{input}, discardLogger(), &stdout); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	outputPath := filepath.Join(dir, "report.pdf")
	if !strings.Contains(stdout.String(), outputPath) {
		t.Errorf("success line %q does not mention %q", stdout.String(), outputPath)
	}

	pdf, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(pdf) == 0 {
		t.Error("output PDF is empty")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}
