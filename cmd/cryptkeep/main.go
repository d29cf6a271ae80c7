package main

import (
	"os"

	"cryptkeep/cmd/cryptkeep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
