package commands

import (
	"fmt"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/toml2/compiler/errors"
	"github.com/conduit-lang/toml2/internal/cli/ui"
	"github.com/conduit-lang/toml2/internal/config"
)

var getJSON bool

// NewGetCommand builds "toml2 get <file> <path>".
func NewGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Query a dotted path within a TOML document",
		Long: `Get prints the value at a dotted path, e.g.:

  toml2 get config.toml servers.alpha.ip
  toml2 get config.toml fruit.0.name

Integer path segments index into arrays (including arrays of tables).`,
		Args: cobra.ExactArgs(2),
		RunE: runGet,
	}
	cmd.Flags().BoolVar(&getJSON, "json", false, "print the value as JSON")
	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	path, query := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	useColor := !noColor && cfg.Output.Color

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

	node, ok := doc.GetPath(query)
	if !ok {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatMessage(ui.MessageOptions{
			Level:   ui.LevelError,
			Context: "path not found",
			Problem: fmt.Sprintf("'%s' has no value at '%s'", path, query),
			NoColor: !useColor,
		}))
		return ParseFailure{err: fmt.Errorf("no value at %q", query)}
	}

	if getJSON || cfg.Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toPlain(node))
	}

	fmt.Fprintln(cmd.OutOrStdout(), plainText(node))
	return nil
}
