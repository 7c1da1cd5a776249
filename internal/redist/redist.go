// Package redist selects the bundled Visual C++ redistributable for a CPU architecture and queues its silent install.
package redist

import (
	"errors"
	"path"
	"sort"
	"strings"

	"github.com/thoas/go-funk"

	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/operations"
)

// bundled maps each supported architecture to the redistributable installer shipped for it
var bundled = map[string]string{
	constants.ArchX86_64: constants.RedistX64Filename,
	constants.ArchArm64:  constants.RedistArm64Filename,
}

// Redistributable is a bundled redistributable installer
type Redistributable struct {
	Arch     string `json:"arch" yaml:"arch"`
	Filename string `json:"filename" yaml:"filename"`
}

// StagedPath is where the package payload places the installer within targetDir
func (r Redistributable) StagedPath(targetDir string) string {
	return path.Join(targetDir, r.Filename)
}

// Arguments makes the installer run silently and without restarting the machine
func (r Redistributable) Arguments() []string {
	return append([]string(nil), constants.RedistInstallArgs...)
}

// UnsupportedArchError is returned for architectures no redistributable is bundled for
type UnsupportedArchError struct {
	Arch string
}

func (e *UnsupportedArchError) Error() string {
	return e.LocaleError()
}

func (e *UnsupportedArchError) LocaleError() string {
	return locale.Tl("err_unsupported_arch", "No Visual C++ redistributable is bundled for CPU architecture '{{.V0}}'", e.Arch)
}

func (e *UnsupportedArchError) ErrorTips() []string {
	return []string{"Supported architectures: " + strings.Join(SupportedArchitectures(), ", ")}
}

// IsUnsupportedArch reports whether err is, or wraps, an UnsupportedArchError
func IsUnsupportedArch(err error) bool {
	var target *UnsupportedArchError
	return errors.As(err, &target)
}

// SupportedArchitectures lists the architectures a redistributable is bundled for, sorted
func SupportedArchitectures() []string {
	archs := funk.Keys(bundled).([]string)
	sort.Strings(archs)
	return archs
}

// Select returns the redistributable bundled for arch
func Select(arch string) (Redistributable, error) {
	filename, ok := bundled[arch]
	if !ok {
		return Redistributable{}, &UnsupportedArchError{Arch: arch}
	}
	return Redistributable{Arch: arch, Filename: filename}, nil
}

// Queuer is the part of a component's operation queue the injector appends to
type Queuer interface {
	Add(kind operations.Kind, args ...string)
	AddElevated(kind operations.Kind, args ...string)
}

var _ Queuer = &operations.Queue{}

// Result describes what Inject did
type Result struct {
	Arch            string           `json:"arch" yaml:"arch"`
	Redistributable *Redistributable `json:"redistributable,omitempty" yaml:"redistributable,omitempty"`
	Skipped         bool             `json:"skipped" yaml:"skipped"`
	Reason          string           `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Inject queues an elevated, silent run of the redistributable for arch followed by the removal of its staged copy
// in targetDir. When no redistributable is bundled for arch the policy decides between skipping both operations and
// returning the UnsupportedArchError; either way nothing is queued.
func Inject(q Queuer, arch, targetDir string, policy Policy) (Result, error) {
	if targetDir == "" {
		return Result{}, errs.New("Target directory for the redistributable cannot be empty")
	}

	result := Result{Arch: arch}
	r, err := Select(arch)
	if err != nil {
		if !IsUnsupportedArch(err) || policy == FailUnsupported {
			return result, err
		}
		result.Skipped = true
		result.Reason = locale.Tl("redist_skipped", "No redistributable is available for architecture '{{.V0}}', skipping its install step", arch)
		logging.Warning("%s", result.Reason)
		return result, nil
	}

	staged := r.StagedPath(targetDir)
	q.AddElevated(operations.Execute, append([]string{staged}, r.Arguments()...)...)
	q.Add(operations.Delete, staged)
	logging.Debug("Queued %s install and cleanup of %s", r.Filename, staged)

	result.Redistributable = &r
	return result, nil
}
