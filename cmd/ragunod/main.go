package main

import (
	"fmt"
	"os"

	"github.com/raguno/raguno/cmd/ragunod/launcher"
)

func main() {
	if err := launcher.NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
