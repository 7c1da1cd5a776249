package captain

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
)

type Executor func(cmd *Command, args []string) error

type Command struct {
	cobra *cobra.Command

	flags     []*Flag
	arguments []*Argument

	execute Executor
	parent  *Command
}

func NewCommand(name, description string, flags []*Flag, args []*Argument, executor Executor) *Command {
	// Validate args
	for idx, arg := range args {
		if idx > 0 && arg.Required && !args[idx-1].Required {
			msg := fmt.Sprintf(
				"Cannot have a non-required argument followed by a required argument.\n\n%v\n\n%v",
				arg, args[len(args)-1],
			)
			panic(msg)
		}
	}

	cmd := &Command{
		execute:   executor,
		arguments: args,
		flags:     flags,
	}

	short := description
	if idx := strings.IndexByte(description, '.'); idx > 0 {
		short = description[0:idx]
	}

	cmd.cobra = &cobra.Command{
		Use:               name,
		Short:             short,
		Long:              description,
		PersistentPreRunE: cmd.persistRunner,
		RunE:              cmd.runner,
		Args:              cobra.MaximumNArgs(len(args)),

		// Silence errors and usage, we handle that ourselves
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	if err := cmd.setFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func (c *Command) Name() string {
	return c.cobra.Name()
}

func (c *Command) Usage() error {
	return c.cobra.Usage()
}

func (c *Command) UsageText() string {
	return c.cobra.UsageString()
}

// SetOutput directs usage and help text to w
func (c *Command) SetOutput(w io.Writer) {
	c.cobra.SetOut(w)
	c.cobra.SetErr(w)
}

func (c *Command) Execute(args []string) error {
	c.cobra.SetArgs(args)
	err := c.cobra.Execute()
	c.cobra.SetArgs(nil)
	return setupSensibleErrors(err)
}

func (c *Command) SetAliases(aliases ...string) *Command {
	c.cobra.Aliases = aliases
	return c
}

func (c *Command) SetHidden(value bool) *Command {
	c.cobra.Hidden = value
	return c
}

func (c *Command) Flags() []*Flag {
	return c.flags
}

func (c *Command) Arguments() []*Argument {
	return c.arguments
}

func (c *Command) AddChildren(children ...*Command) {
	for _, child := range children {
		child.parent = c
		c.cobra.AddCommand(child.cobra)
	}
}

func (c *Command) flagByName(name string, persist bool) *Flag {
	for _, flag := range c.flags {
		if flag.Name == name && flag.Persist == persist {
			return flag
		}
	}
	return nil
}

// persistRunner runs the OnUse hooks of persistent flags set anywhere in the tree
func (c *Command) persistRunner(cobraCmd *cobra.Command, args []string) error {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		cmd.runFlags(cobraCmd, true)
	}
	return nil
}

func (c *Command) runner(cobraCmd *cobra.Command, args []string) error {
	logging.Debug("Running command: %s", cobraCmd.CommandPath())

	// Run OnUse functions for non-persistent flags
	c.runFlags(cobraCmd, false)

	for idx, arg := range c.arguments {
		if arg.Required && idx > len(args)-1 {
			return locale.NewInputError("err_arg_required", "The following argument is required:\n  Name: {{.V0}}\n  Description: {{.V1}}", arg.Name, arg.Description)
		}

		if idx >= len(args) {
			break
		}

		switch v := arg.Value.(type) {
		case *string:
			*v = args[idx]
		case ArgMarshaler:
			if err := v.Set(args[idx]); err != nil {
				return err
			}
		default:
			return errs.New("arg: %s must be *string, or ArgMarshaler", arg.Name)
		}
	}

	return c.execute(c, args)
}

func (c *Command) runFlags(cobraCmd *cobra.Command, persist bool) {
	cobraCmd.Flags().VisitAll(func(cobraFlag *pflag.Flag) {
		if !cobraFlag.Changed {
			return
		}

		flag := c.flagByName(cobraFlag.Name, persist)
		if flag == nil || flag.OnUse == nil {
			return
		}

		flag.OnUse()
	})
}

// setupSensibleErrors inspects an error value for certain errors and returns a
// wrapped error that can be checked and that is localized.
func setupSensibleErrors(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("invalid argument %q for %q flag: %v", value, flagName, err)
	invalidArg := "invalid argument "
	if strings.Contains(errMsg, invalidArg) {
		segments := strings.SplitN(errMsg, ": ", 2)

		flagText := "{unknown flag}"
		msg := "unknown error"

		if len(segments) > 0 {
			subsegs := strings.SplitN(segments[0], "for ", 2)
			if len(subsegs) > 1 {
				flagText = strings.TrimSuffix(subsegs[1], " flag")
			}
		}

		if len(segments) > 1 {
			msg = segments[1]
		}

		return locale.WrapInputError(err, "command_flag_invalid_value", "Invalid value for {{.V0}} flag: {{.V1}}", flagText, msg)
	}

	// pflag: flag.go: output being parsed:
	// fmt.Errorf("unknown flag: --%v", name)
	unknown := "unknown flag: "
	if strings.HasPrefix(errMsg, unknown) {
		flagText := strings.TrimPrefix(errMsg, unknown)
		return locale.WrapInputError(err, "command_flag_no_such_flag", "No such flag: {{.V0}}", flagText)
	}

	// cobra: args.go: fmt.Errorf("accepts at most %d arg(s), received %d", n, len(args))
	// cobra: command.go: fmt.Errorf("unknown command %q for %q%s", ...)
	if strings.HasPrefix(errMsg, "accepts at most") || strings.HasPrefix(errMsg, "unknown command") {
		return locale.WrapInputError(err, "command_invalid_usage", "Invalid usage: {{.V0}}", errMsg)
	}

	return err
}
