package internal

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes a delegated generator and reports its exit status.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (int, error)
}

// ExecRunner runs commands as child processes. Nil streams inherit the
// process streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = orStream(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// A child killed by a signal has no exit status.
		if code := exitErr.ExitCode(); code > 0 {
			return code, nil
		}
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}

func orStream(r io.Reader, fallback *os.File) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback *os.File) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
