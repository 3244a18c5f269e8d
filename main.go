package main

import (
	"fmt"
	"os"

	"github.com/EAGLE1309/placecraft-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
