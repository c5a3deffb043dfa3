package main

import (
	"os"

	"github.com/ghuser/mediashelf/cmd/playground/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
