package errs

import (
	"errors"
)

// UnwrapExitCode returns the exit code carried by the first ExitCodeable in the error chain, 1 if there is none and
// 0 for a nil error
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
