package main

import (
	"os"

	"NumConv/cmd/numconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
