package main

import (
	"os"

	"github.com/peapod-fundraiser/site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
