package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/prodverify/internal/domain/entities"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps the outcome to a process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return entities.ExitSuccess
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "Error: %v\n\n", usage.Err)
		fmt.Fprint(stderr, usage.usage)
		return entities.ExitConfiguration
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return entities.ExitCode(err)
}

// usageError marks bad flags or arguments
type usageError struct {
	Err   error
	usage string
}

func (e *usageError) Error() string { return e.Err.Error() }

func (e *usageError) Unwrap() error { return e.Err }
