package commands

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/toml2/compiler/errors"
	"github.com/conduit-lang/toml2/compiler/tree"
	"github.com/conduit-lang/toml2/internal/config"
	"github.com/conduit-lang/toml2/internal/logging"
)

var parseJSON bool

// NewParseCommand builds "toml2 parse <file>".
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a TOML document and report success or the first error",
		Long: `Parse reads a TOML document and reports whether it's valid.

On success, prints the document (as a table summary, or as JSON with
--json). On failure, prints a positioned diagnostic and exits 2.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().BoolVar(&parseJSON, "json", false, "print the parsed document as JSON")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.New(verbose)
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	useColor := !noColor && cfg.Output.Color

	if _, statErr := os.Stat(path); statErr != nil {
		return fmt.Errorf("%s: %w", path, statErr)
	}

	logger.Debug("parsing document", zap.String("path", path))

	doc, err := parseFile(path)
	if err != nil {
		ce, ok := err.(errors.CompilerError)
		if ok {
			if ce.Location.File == "" {
				ce.Location.File = path
			}
			fmt.Fprint(cmd.ErrOrStderr(), errors.EnrichErrorFromFile(ce).FormatForTerminal(useColor))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
		return ParseFailure{err: err}
	}

	if parseJSON || cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toPlain(doc))
	}

	printSummary(cmd, doc)
	return nil
}

// printSummary prints a one-line-per-top-level-key overview of the
// document, mirroring the detail level of toml2 get without requiring
// a path argument.
func printSummary(cmd *cobra.Command, doc *tree.Node) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d top-level key(s):\n", doc.Len())
	for _, child := range doc.Children() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", child.Name(), child.Type())
	}
}

