package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the mdpress CLI.
type cliFlags struct {
	output      string
	theme       string
	css         string
	toc         bool
	pageNumbers bool
	landscape   bool
	verbose     bool

	pageSize string
	margin   float64
	timeout  string
	htmlOnly bool
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdpress", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: input with .pdf extension)")
	fs.StringVarP(&f.theme, "theme", "t", "github", "built-in theme: default, github, academic")
	fs.StringVarP(&f.css, "css", "c", "", "custom CSS file path")
	fs.BoolVar(&f.toc, "toc", false, "include table of contents")
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "add page numbers")
	fs.BoolVar(&f.landscape, "landscape", false, "use landscape orientation")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose output")

	fs.StringVar(&f.pageSize, "page-size", "letter", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", 0.5, "page margin in inches (0.25-3.0)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output assembled HTML instead of PDF")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: mdpress <input.md> [options]

Convert Markdown files to PDF with professional formatting.

Options:
  -o, --output <path>   Output PDF file (default: input with .pdf extension)
  -t, --theme <name>    Built-in theme: default, github, academic (default: github)
  -c, --css <path>      Custom CSS file path
      --toc             Include table of contents
      --page-numbers    Add page numbers
      --landscape       Use landscape orientation
      --page-size <s>   Page size: letter, a4, legal (default: letter)
      --margin <in>     Page margin in inches (default: 0.5)
      --timeout <d>     PDF generation timeout (e.g., 30s, 2m)
      --html-only       Output assembled HTML instead of PDF
  -v, --verbose         Enable verbose output

Examples:
  mdpress README.md
  mdpress doc.md -o report.pdf --toc --page-numbers
  mdpress notes.md -c custom.css -t academic
`)
}
