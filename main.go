package main

import (
	"os"

	"github.com/conneroisu/bsui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
