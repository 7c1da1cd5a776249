package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/redist"
)

// tailLines is how much recent log output is shown with an unexpected error
const tailLines = 10

type errorOutput struct {
	err     error
	message string
	tips    []string
	tail    string
}

func (e *errorOutput) Error() string {
	return e.message
}

func (e *errorOutput) Unwrap() error {
	return e.err
}

func (e *errorOutput) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return struct {
			Message string   `json:"message" yaml:"message"`
			Tips    []string `json:"tips,omitempty" yaml:"tips,omitempty"`
		}{e.message, e.tips}
	}

	lines := []string{e.message}
	if len(e.tips) > 0 {
		lines = append(lines, "", "[BOLD]Tips:[/RESET]")
		for _, tip := range e.tips {
			lines = append(lines, fmt.Sprintf(" - %s", tip))
		}
	}
	if e.tail != "" {
		lines = append(lines, "", locale.Tr("err_tail", strings.TrimRight(e.tail, "\n")))
	}
	return strings.Join(lines, "\n")
}

// rationalizeError turns errors we know how to explain into user-facing errors
func rationalizeError(err *error) {
	var archErr *redist.UnsupportedArchError
	switch {
	case *err == nil:
		return

	// Do not modify an existing user-facing error.
	case errs.IsUserFacing(*err):
		return

	// The user asked for unsupported architectures to fail the install.
	case errors.As(*err, &archErr):
		*err = errs.WrapUserFacing(*err,
			archErr.LocaleError(),
			errs.SetInput(),
			errs.SetTips(locale.Tl("err_tip_policy_skip", "Run with [BOLD]--policy skip[/RESET] to install without the redistributable")))
	}
}

// unwrapError returns the exit code for err and the error to report, if any
func unwrapError(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	rationalizeError(&err)

	var ee errs.Error
	stack := "not provided"
	if errors.As(err, &ee) {
		stack = fmt.Sprintf("%+v", ee.Stack())
	}

	out := &errorOutput{err: err, tips: locale.ErrorTips(err)}

	// Show what led up to the error if this isn't a user input error
	if !locale.IsInputError(err) && !logging.CurrentHandler().Verbose() {
		out.tail = lastLines(logging.Tail(), tailLines)
	}
	logging.Debug("Returning error:\n%s\nCreated at:\n%s", errs.Join(err, "\n").Error(), stack)

	var uf errs.UserFacingError
	if errors.As(err, &uf) {
		out.message = uf.UserError()
	} else {
		out.message = locale.JoinedErrorMessage(err)
	}

	return errs.UnwrapExitCode(err), out
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
