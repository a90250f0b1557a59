package main

import (
	"os"

	"github.com/vexpera-br/toon-go/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
