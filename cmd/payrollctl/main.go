package main

import (
	"os"

	"github.com/paydeck/bank_portal_app/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
