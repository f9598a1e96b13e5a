package main

import (
	"fmt"
	"os"

	"github.com/OpenClemson/orangefs-purge/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(exitcode.Failure)
	}
}
