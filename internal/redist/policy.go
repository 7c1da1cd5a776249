package redist

import (
	"strings"

	"github.com/PrismLauncher/installer/internal/locale"
)

// Policy decides what happens when no redistributable is bundled for the architecture
type Policy int

const (
	// SkipUnsupported logs a diagnostic and leaves the component with its default operations only
	SkipUnsupported Policy = iota
	// FailUnsupported returns the UnsupportedArchError so the install can be aborted
	FailUnsupported
)

func (p Policy) String() string {
	switch p {
	case FailUnsupported:
		return "fail"
	default:
		return "skip"
	}
}

// ParsePolicy parses the name of a policy, an empty name is SkipUnsupported
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "skip":
		return SkipUnsupported, nil
	case "fail":
		return FailUnsupported, nil
	}
	return SkipUnsupported, locale.NewInputError("err_unknown_policy", "Unknown policy '{{.V0}}', expected 'skip' or 'fail'", name)
}

// Set implements pflag.Value
func (p *Policy) Set(v string) error {
	parsed, err := ParsePolicy(v)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value
func (p *Policy) Type() string {
	return "policy"
}
