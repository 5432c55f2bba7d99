package main

import (
	"os"

	"iconbundle/cmd/iconbundle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
