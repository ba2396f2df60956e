// Package exec provides an abstraction over launching external processes.
// It backs every invocation of the forgekit toolchain.
package exec

import (
	"context"
	"io"
)

// Result holds the termination state of a completed process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunOptions configures a single process invocation.
type RunOptions struct {
	Name   string    // Binary name or path (required)
	Args   []string  // Argument vector, in order
	Dir    string    // Working directory (empty = current)
	Env    []string  // Additional environment variables (KEY=VALUE format)
	Stdin  io.Reader // Stdin source (nil = no input)
	Stdout io.Writer // If set, streams stdout here instead of capturing
	Stderr io.Writer // If set, streams stderr here instead of capturing
}

// Executor runs external processes. Exactly one process is spawned per Run
// call; the call owns its process handle and releases it on return.
type Executor interface {
	// Run launches the process and waits for it to terminate. Output is
	// captured into the Result unless Stdout/Stderr writers are set in
	// opts, in which case the streams are wired through and the matching
	// Result fields are nil. A non-zero exit returns *os/exec.ExitError
	// (use errors.As to extract); launch failures return the underlying
	// os/exec error and a nil Result.
	Run(ctx context.Context, opts *RunOptions) (*Result, error)

	// LookPath searches for an executable in PATH.
	LookPath(name string) (string, error)
}
