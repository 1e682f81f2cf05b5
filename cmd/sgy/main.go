package main

import (
	"os"

	"github.com/kmilner/schoology-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
