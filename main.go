package main

import (
	"os"

	"github.com/Aarav718/seedkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
