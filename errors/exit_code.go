package errors

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

// codedError carries the status preform exits with when err reaches main.
type codedError struct {
	cause error
	code  int
}

func (e *codedError) Error() string { return e.cause.Error() }

func (e *codedError) Cause() error { return e.cause }

func (e *codedError) Unwrap() error { return e.cause }

// WithExitCode sets the exit status for err. Returns nil for a nil err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &codedError{cause: err, code: code}
}

// GetExitCode returns the status preform should exit with: 0 without an error, the code set by
// WithExitCode, a child's status from *exec.ExitError, and 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}
