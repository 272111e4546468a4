// Command refgen generates, validates and serves human-readable reference codes.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	// The std log package is routed through slog once the app logger is set
	// as default, so fatal errors are written directly.
	if err := newApp(os.Stdout, os.Stderr).RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "refgen: %v\n", err)
		os.Exit(1)
	}
}
