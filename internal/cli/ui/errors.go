// Package ui holds small terminal-output helpers shared by the
// toml2 subcommands: success/info lines and CLI-usage errors that
// aren't CompilerError diagnostics (a missing file, a bad flag
// combination). Parse diagnostics themselves are rendered directly by
// compiler/errors.CompilerError.FormatForTerminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// MessageLevel represents the severity of a non-diagnostic CLI message.
type MessageLevel int

const (
	LevelError MessageLevel = iota
	LevelWarning
	LevelInfo
)

// MessageOptions configures a CLI usage message.
type MessageOptions struct {
	Level       MessageLevel
	Context     string
	Problem     string
	Suggestions []string
	NoColor     bool
}

// FormatMessage renders a usage-level message, e.g. "file not found" or
// "unknown output format", independent of any parsed document.
//
// Example output:
//
//	✗ FILE NOT FOUND: config.toml
//	  Did you mean: conf.toml, config.toml.bak?
func FormatMessage(opts MessageOptions) string {
	var b strings.Builder

	var c *color.Color
	var symbol string
	switch opts.Level {
	case LevelError:
		c = color.New(color.FgRed, color.Bold)
		symbol = "✗"
	case LevelWarning:
		c = color.New(color.FgYellow, color.Bold)
		symbol = "!"
	case LevelInfo:
		c = color.New(color.FgCyan, color.Bold)
		symbol = "i"
	}
	c.EnableColor()
	if opts.NoColor {
		c.DisableColor()
	}

	if opts.Context != "" {
		c.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		c.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		if opts.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "  Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	return b.String()
}

// WriteMessage writes a formatted message to w.
func WriteMessage(w io.Writer, opts MessageOptions) {
	fmt.Fprint(w, FormatMessage(opts))
}

// FormatSuccess creates a success message, e.g. after toml2 init scaffolds
// a file.
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	green.EnableColor()
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to w.
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// FileNotFoundError reports that a path given on the command line
// doesn't exist, optionally suggesting nearby filenames.
func FileNotFoundError(path string, suggestions []string, noColor bool) string {
	return FormatMessage(MessageOptions{
		Level:       LevelError,
		Context:     "file not found",
		Problem:     fmt.Sprintf("cannot find '%s'", path),
		Suggestions: suggestions,
		NoColor:     noColor,
	})
}

// UsageError reports a bad flag or argument combination.
func UsageError(message string, noColor bool) string {
	return FormatMessage(MessageOptions{
		Level:   LevelError,
		Context: "usage error",
		Problem: message,
		NoColor: noColor,
	})
}
