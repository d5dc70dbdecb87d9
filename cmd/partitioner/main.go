package main

import (
	"errors"
	"fmt"
	"os"

	partitioner "github.com/mreithub/go-index-partitioner"
)

const (
	exitError = 1
	exitUsage = 2
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, partitioner.ErrUsage),
		errors.Is(err, partitioner.ErrInvalidConfig),
		errors.Is(err, partitioner.ErrInvalidArgument),
		errors.Is(err, partitioner.ErrRange),
		errors.Is(err, errInvalidFlags):
		return exitUsage
	}
	return exitError
}
