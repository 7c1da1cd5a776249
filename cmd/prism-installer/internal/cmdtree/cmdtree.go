package cmdtree

import (
	"github.com/PrismLauncher/installer/internal/captain"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/runners/root"
	"github.com/PrismLauncher/installer/internal/session"
	"github.com/PrismLauncher/installer/pkg/sysinfo"
)

// CmdTree manages a tree of captain.Command instances.
type CmdTree struct {
	cmd *captain.Command
}

// New prepares a CmdTree.
func New(prime *primer.Values) *CmdTree {
	globals := newGlobalOptions()

	rootCmd := newRootCommand(prime, globals)
	rootCmd.AddChildren(
		newTargetDirCommand(prime),
		newRedistCommand(prime),
		newPlanCommand(prime),
	)

	return &CmdTree{
		cmd: rootCmd,
	}
}

type globalOptions struct {
	Verbose bool
	Output  string
	Session string
	Persist bool
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{}
}

func newRootCommand(prime *primer.Values, globals *globalOptions) *captain.Command {
	opts := root.NewOptions()

	runner := root.New(opts, prime)
	cmd := captain.NewCommand(
		constants.CommandName,
		locale.T("prism_installer_description"),
		[]*captain.Flag{
			{
				Name:        "verbose",
				Shorthand:   "v",
				Description: locale.T("flag_verbose_description"),
				Persist:     true,
				OnUse: func() {
					logging.CurrentHandler().SetVerbose(true)
				},
				Value: &globals.Verbose,
			},
			{
				Name:        "output", // Name and Shorthand should be kept in sync with cmd/prism-installer/main.go
				Shorthand:   "o",
				Description: locale.T("flag_output_description"),
				Persist:     true,
				Value:       &globals.Output,
			},
			{
				Name:        "session", // Name should be kept in sync with cmd/prism-installer/main.go
				Description: locale.T("flag_session_description"),
				Persist:     true,
				Value:       &globals.Session,
			},
			{
				Name:        "persist", // Name should be kept in sync with cmd/prism-installer/main.go
				Description: locale.T("flag_persist_description"),
				Persist:     true,
				Value:       &globals.Persist,
			},
			{
				Name:        "version",
				Description: locale.Tl("flag_version_description", "Show the version"),
				Value:       &opts.Version,
			},
		},
		[]*captain.Argument{},
		func(ccmd *captain.Command, args []string) error {
			return runner.Run(ccmd.Usage)
		},
	)

	return cmd
}

// Execute runs the CmdTree using the provided CLI arguments.
func (ct *CmdTree) Execute(args []string) error {
	return ct.cmd.Execute(args)
}

// Command returns the root command
func (ct *CmdTree) Command() *captain.Command {
	return ct.cmd
}

// defaultOS is the platform the installer runtime would report on this machine
func defaultOS() string {
	return sysinfo.OS().HostID()
}

// primeSystem fixes the architecture reported to the hooks when one was given on the command line
func primeSystem(prime *primer.Values, arch string) {
	if arch == "" {
		return
	}
	prime.SetSystemInfo(session.FixedSystem(arch))
}
