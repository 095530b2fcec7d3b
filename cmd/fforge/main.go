package main

import (
	"os"

	"github.com/flaskforge/fforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
