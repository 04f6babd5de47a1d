package main

import (
	"os"

	"github.com/msto63/munits/cmd/munits/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
