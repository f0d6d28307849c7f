package main

import (
	"os"

	"dante/cmd/dante/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
