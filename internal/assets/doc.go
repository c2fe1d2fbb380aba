// Package assets provides the built-in theme stylesheets.
// Styles are compiled into the binary via go:embed and selected by name at
// runtime, keeping bulk CSS out of the orchestration code.
package assets
