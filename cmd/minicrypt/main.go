package main

import (
	"os"

	"minicrypt/cmd/minicrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
