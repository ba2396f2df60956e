package forgekit

import (
	"errors"
	"fmt"
	"io/fs"
	osexec "os/exec"
	"strings"

	"github.com/ledokoz/forgekit-go/internal/exec"
)

// Sentinel errors classifying toolchain failures. Match them with errors.Is;
// the concrete *Error carries the diagnostic message.
var (
	// ErrToolchainNotFound means the forgekit binary could not be resolved.
	ErrToolchainNotFound = errors.New("forgekit toolchain not found")

	// ErrSpawn means the forgekit binary was found but could not be started.
	ErrSpawn = errors.New("failed to start forgekit")

	// ErrNonZeroExit means forgekit started but exited with a non-zero status.
	ErrNonZeroExit = errors.New("forgekit exited with an error")

	// ErrParse means forgekit succeeded but its output was missing data the
	// operation requires (such as the created package path).
	ErrParse = errors.New("could not parse forgekit output")
)

// NotFoundRemedy is the remediation appended to ErrToolchainNotFound
// failures. It names the install step and the path override.
const NotFoundRemedy = `forgekit toolchain not found

To install:
  cargo install forgekit-cli

Or point FORGEKIT_PATH at an existing binary:
  export FORGEKIT_PATH=/path/to/forgekit`

// Error is a classified failure from a single toolchain invocation.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Message is the diagnostic text: captured stderr (or stdout) for exit
	// failures, remediation guidance for a missing toolchain.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

// Is reports whether target is this error's kind, so that
// errors.Is(err, forgekit.ErrNonZeroExit) works on wrapped errors.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps a failed invocation to a typed error. result may be nil for
// launch failures.
func classify(result *exec.Result, err error) error {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return &Error{
			Kind:    ErrNonZeroExit,
			Message: exitMessage(result),
			Err:     err,
		}
	}
	return classifyLaunch(err)
}

// classifyLaunch maps a launch failure (the process never ran) to a typed
// error.
func classifyLaunch(err error) error {
	if errors.Is(err, osexec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: ErrToolchainNotFound, Message: NotFoundRemedy, Err: err}
	}
	return &Error{Kind: ErrSpawn, Err: err}
}

// exitMessage picks the diagnostic text for a non-zero exit: stderr when
// non-empty, stdout otherwise.
func exitMessage(result *exec.Result) string {
	if result == nil {
		return ""
	}
	if msg := strings.TrimSpace(string(result.Stderr)); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(result.Stdout))
}
