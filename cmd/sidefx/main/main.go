package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/sidefx/cmd/sidefx"
)

func main() {
	rootCmd := sidefx.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// Strict mode encodes the missing-docstring count in the
		// exit status.
		var exitErr *sidefx.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
