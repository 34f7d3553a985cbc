package main

import (
	"os"

	"github.com/m-calder/crewctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
