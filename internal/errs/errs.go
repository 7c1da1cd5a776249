package errs

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   pkgerrors.StackTrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() pkgerrors.StackTrace {
	return e.stack
}

func newError(msg string, wrapTarget error) error {
	var stack pkgerrors.StackTrace
	if st, ok := pkgerrors.New(msg).(stackTracer); ok {
		stack = st.StackTrace()
		// Drop newError and its exported caller (New or Wrap)
		if len(stack) > 2 {
			stack = stack[2:]
		}
	}
	return &WrappedErr{msg, wrapTarget, stack}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// Join all error messages in the Unwrap stack
func Join(err error, sep string) error {
	return New(strings.Join(messages(err), sep))
}

// JoinMessage joins all error messages in the Unwrap stack with ": "
func JoinMessage(err error) string {
	return strings.Join(messages(err), ": ")
}

func messages(err error) []string {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return message
}

// Unpack returns every error in the Unwrap stack, starting with the given error
func Unpack(err error) []error {
	var result []error
	for err != nil {
		result = append(result, err)
		err = errors.Unwrap(err)
	}
	return result
}

// Matches is an alias of errors.As that returns the match instead of populating a target
func Matches[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
