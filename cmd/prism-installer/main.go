package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/PrismLauncher/installer/cmd/prism-installer/internal/cmdtree"
	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/installation/storage"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/session"
)

type globalFlags struct {
	Output  string
	Verbose bool
	Session string
	Persist bool
}

func main() {
	var exitCode int
	defer func() {
		if r := recover(); r != nil {
			logging.Critical("%v - caught panic\n%s", r, string(debug.Stack()))
			fmt.Fprintln(os.Stderr, "An unexpected error occurred while evaluating the installer hooks.")
			exitCode = 1
		}
		logging.Close()
		os.Exit(exitCode)
	}()

	// Set up our output formatter/writer
	flags := parseGlobalFlags(os.Args[1:])
	out, err := initOutput(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, locale.JoinedErrorMessage(err))
		exitCode = 1
		return
	}

	err = run(os.Args, flags, out)
	if err != nil {
		exitCode, err = unwrapError(err)
		if err != nil {
			out.Error(err)
		}
	}
}

// parseGlobalFlags picks out the flags needed before the command tree exists. Name and Shorthand should be kept in
// sync with cmdtree.
func parseGlobalFlags(args []string) *globalFlags {
	flags := &globalFlags{}
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVarP(&flags.Output, "output", "o", "", "")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "")
	fs.StringVar(&flags.Session, "session", "", "")
	fs.BoolVar(&flags.Persist, "persist", false, "")
	if err := fs.Parse(args); err != nil {
		logging.Debug("Could not pre-parse global flags: %v", err)
	}

	if !flags.Verbose {
		flags.Verbose = os.Getenv(constants.VerboseEnvVarName) != ""
	}
	if flags.Session == "" {
		flags.Session = os.Getenv(constants.SessionEnvVarName)
	}
	return flags
}

// sessionDir is where the session is persisted, empty for an in-memory session
func (f *globalFlags) sessionDir() (string, error) {
	if f.Session != "" || !f.Persist {
		return f.Session, nil
	}
	dir, err := storage.AppDataPath()
	if err != nil {
		return "", locale.WrapError(err, "err_session_dir", "Could not determine where to persist the installer session")
	}
	return dir, nil
}

func initOutput(flags *globalFlags) (output.Outputer, error) {
	return output.New(strings.ToLower(flags.Output), &output.Config{
		OutWriter: os.Stdout,
		ErrWriter: os.Stderr,
		Colored:   term.IsTerminal(int(os.Stdout.Fd())),
	})
}

func run(args []string, flags *globalFlags, out output.Outputer) (rerr error) {
	logging.CurrentHandler().SetVerbose(flags.Verbose)
	logging.Debug("Args: %v", args)

	dir, err := flags.sessionDir()
	if err != nil {
		return err
	}
	store, err := openStore(dir)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil && rerr == nil {
			rerr = errs.Wrap(err, "Could not close the installer session")
		}
	}()

	prime := primer.New(out, store, session.DetectedSystem{})
	cmds := cmdtree.New(prime)
	return cmds.Execute(args[1:])
}

type closingStore interface {
	config.Store
	Close() error
}

type memoryStore struct {
	*config.Map
}

func (memoryStore) Close() error { return nil }

// openStore opens the sqlite session in dir, or an in-memory store when no session directory was given
func openStore(dir string) (closingStore, error) {
	if dir == "" {
		return memoryStore{config.NewMap(nil)}, nil
	}

	store, err := config.New(dir)
	if err != nil {
		return nil, locale.WrapInputError(err, "err_session_open", "Could not open the installer session at {{.V0}}", dir)
	}
	logging.Debug("Session: %s", store.ConfigPath())
	return store, nil
}
