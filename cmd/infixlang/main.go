package main

import (
	"os"

	"github.com/a-rahimi/infixlang/cmd/infixlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
