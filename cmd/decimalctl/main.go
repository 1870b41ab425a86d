package main

import (
	"os"

	"github.com/govalues/decimal96/cmd/decimalctl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
