package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/toml2/internal/cli/ui"
)

var (
	initOutput string
	initForce  bool
)

// NewInitCommand builds "toml2 init": an interactive wizard that
// scaffolds a starter TOML document.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a new TOML document",
		RunE:  runInit,
	}
	cmd.Flags().StringVarP(&initOutput, "output", "o", "config.toml", "path to write")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
	}

	var title string
	if err := survey.AskOne(&survey.Input{
		Message: "Document title:",
		Default: filepath.Base(filepath.Dir(initOutput)),
	}, &title, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var owner string
	if err := survey.AskOne(&survey.Input{
		Message: "Owner name:",
	}, &owner); err != nil {
		return err
	}

	var includeServers bool
	if err := survey.AskOne(&survey.Confirm{
		Message: "Include an example [[servers]] array of tables?",
		Default: true,
	}, &includeServers); err != nil {
		return err
	}

	contents := scaffold(title, owner, includeServers)

	if err := os.WriteFile(initOutput, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", initOutput, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess(fmt.Sprintf("wrote %s", initOutput), noColor))
	return nil
}

func scaffold(title, owner string, includeServers bool) string {
	s := fmt.Sprintf("title = %q\n\n[owner]\nname = %q\n", title, owner)
	if includeServers {
		s += "\n[[servers]]\nhost = \"127.0.0.1\"\nport = 8080\n\n[[servers]]\nhost = \"127.0.0.1\"\nport = 8081\n"
	}
	return s
}
