package main

import (
	"os"

	"github.com/Sebv03/captura/cmd/captura/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
