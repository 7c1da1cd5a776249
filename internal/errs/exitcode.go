package errs

// ExitCodeable is implemented by errors that carry a process exit code
type ExitCodeable interface {
	ExitCode() int
}

// ExitCode attaches an exit code to an error without changing its message
type ExitCode struct {
	code       int
	wrappedErr error
}

func WrapExitCode(err error, code int) error {
	return &ExitCode{code, err}
}

func (e *ExitCode) Error() string {
	if e.wrappedErr == nil {
		return "ExitCode"
	}
	return e.wrappedErr.Error()
}

func (e *ExitCode) Unwrap() error {
	return e.wrappedErr
}

func (e *ExitCode) ExitCode() int {
	return e.code
}
