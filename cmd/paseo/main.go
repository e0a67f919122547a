package main

import (
	"os"

	"github.com/paseo-app/paseo-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
