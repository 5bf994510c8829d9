// Package commands implements the toml2 CLI's subcommands: parse, get,
// and init, wired onto a cobra command tree exactly like its teacher's
// single-binary compiler CLI.
package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags.
	Version = "dev"

	noColor bool
	verbose bool
)

// ParseFailure marks an error whose cause is an invalid TOML document
// (already reported to stderr as a diagnostic) rather than a CLI usage
// or I/O problem, so main can choose a distinct exit code for it.
type ParseFailure struct{ err error }

func (f ParseFailure) Error() string { return f.err.Error() }
func (f ParseFailure) Unwrap() error { return f.err }

// NewRootCommand builds the toml2 command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toml2",
		Short: "Parse and query TOML 0.4 documents",
		Long: color.CyanString(`toml2 - a TOML 0.4 parser and query tool

Parses TOML configuration documents into a typed tree and lets you
inspect them from the command line.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewParseCommand())
	rootCmd.AddCommand(NewGetCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// NewVersionCommand reports the toml2 binary's version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			valueColor := color.New(color.FgCyan, color.Bold)
			valueColor.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// Execute runs the toml2 command tree.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(ParseFailure); !ok {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
