package captain

import (
	"github.com/spf13/pflag"

	"github.com/PrismLauncher/installer/internal/errs"
)

// FlagMarshaler describes a flag value that parses itself, such as redist.Policy
type FlagMarshaler pflag.Value

// ArgMarshaler describes an argument value that parses itself
type ArgMarshaler interface {
	Set(string) error
}

// Flag is a command line flag. Value points at the variable the parsed flag is written to and doubles as its default.
type Flag struct {
	Name        string
	Shorthand   string
	Description string
	Persist     bool
	Hidden      bool
	OnUse       func()

	Value interface{}
}

// Argument is a positional argument
type Argument struct {
	Name        string
	Description string
	Required    bool
	Value       interface{}
}

func (c *Command) setFlags(flags []*Flag) error {
	for _, flag := range flags {
		flagSetter := c.cobra.Flags
		if flag.Persist {
			flagSetter = c.cobra.PersistentFlags
		}

		switch v := flag.Value.(type) {
		case nil:
			return errs.New("flag value must not be nil (%v)", flag)
		case *string:
			flagSetter().StringVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *bool:
			flagSetter().BoolVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *int:
			flagSetter().IntVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case *[]string:
			flagSetter().StringSliceVarP(v, flag.Name, flag.Shorthand, *v, flag.Description)
		case FlagMarshaler:
			flagSetter().VarP(v, flag.Name, flag.Shorthand, flag.Description)
		default:
			return errs.New("flag type not supported: %T", flag.Value)
		}

		if flag.Hidden {
			if err := flagSetter().MarkHidden(flag.Name); err != nil {
				return errs.Wrap(err, "Could not hide flag %s", flag.Name)
			}
		}
	}

	return nil
}
