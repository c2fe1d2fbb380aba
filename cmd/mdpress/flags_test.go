package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"doc.md"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
	if flags.theme != "github" {
		t.Errorf("theme = %q, want github", flags.theme)
	}
	if flags.pageSize != "letter" {
		t.Errorf("pageSize = %q, want letter", flags.pageSize)
	}
	if flags.margin != 0.5 {
		t.Errorf("margin = %v, want 0.5", flags.margin)
	}
	if flags.toc || flags.pageNumbers || flags.landscape || flags.verbose || flags.htmlOnly {
		t.Errorf("boolean flags should default to false: %+v", flags)
	}
}

func TestParseFlags_AllSet(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"doc.md",
		"-o", "out.pdf",
		"-t", "academic",
		"-c", "custom.css",
		"--toc",
		"--page-numbers",
		"--landscape",
		"--page-size", "a4",
		"--margin", "1.0",
		"--timeout", "30s",
		"--html-only",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
	want := cliFlags{
		output:      "out.pdf",
		theme:       "academic",
		css:         "custom.css",
		toc:         true,
		pageNumbers: true,
		landscape:   true,
		verbose:     true,
		pageSize:    "a4",
		margin:      1.0,
		timeout:     "30s",
		htmlOnly:    true,
	}
	if *flags != want {
		t.Errorf("flags = %+v, want %+v", *flags, want)
	}
}

func TestParseFlags_FlagsAfterPositional(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"doc.md", "--toc"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !flags.toc {
		t.Error("flag after positional argument not parsed")
	}
	if len(args) != 1 {
		t.Errorf("args = %v, want [doc.md]", args)
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseFlags(--help) error = %v, want flag.ErrHelp", err)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseFlags([]string{"--no-such-flag"})
	if err == nil {
		t.Error("expected error for unknown flag")
	}
}
