package main

import (
	"os"

	"github.com/conduit-lang/toml2/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if _, ok := err.(commands.ParseFailure); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
