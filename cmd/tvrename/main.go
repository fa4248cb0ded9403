package main

import (
	"fmt"
	"os"

	"tvrename/internal/cmd"
)

// Entry point for the application
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tvrename: %v\n", err)
		os.Exit(1)
	}
}
