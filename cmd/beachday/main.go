package main

import (
	"os"

	"github.com/beachday/beachday/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
