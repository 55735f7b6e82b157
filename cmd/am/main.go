package main

import (
	"os"

	"github.com/mvetrov/assetmart-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
