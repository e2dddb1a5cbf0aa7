package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitLinesFailed = 2
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := Execute(context.Background(), os.Args[1:])
	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errLinesFailed):
		os.Exit(ExitLinesFailed)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
