package main

import (
	"os"

	"github.com/dayplanhq/dayplan-mcp/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
