// Package session plays the part of the installer runtime: it owns the configuration store and the components'
// operation queues, and drives the hooks the way the runtime would.
package session

import (
	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/operations"
	"github.com/PrismLauncher/installer/internal/redist"
	"github.com/PrismLauncher/installer/pkg/sysinfo"
)

// Mode is the role the runtime was started in
type Mode int

const (
	InstallerMode Mode = iota
	MaintenanceMode
)

func (m Mode) String() string {
	if m == MaintenanceMode {
		return "maintenance"
	}
	return "installer"
}

// Session is one run of the installer runtime
type Session struct {
	store config.Store
	mode  Mode
}

var _ hooks.Installer = &Session{}

// New starts a session over store. The platform and base directory are seeded the way the runtime seeds them from
// its own configuration before any hook runs. The maintenance tool keeps a target directory already in the store.
func New(store config.Store, mode Mode, hostOS, baseTarget string) (*Session, error) {
	if err := store.Set(constants.CfgOS, hostOS); err != nil {
		return nil, errs.Wrap(err, "Could not seed %s", constants.CfgOS)
	}
	if mode == MaintenanceMode && store.GetString(constants.CfgTargetDir) != "" {
		return &Session{store, mode}, nil
	}
	if err := store.Set(constants.CfgTargetDir, baseTarget); err != nil {
		return nil, errs.Wrap(err, "Could not seed %s", constants.CfgTargetDir)
	}
	return &Session{store, mode}, nil
}

func (s *Session) IsInstaller() bool {
	return s.mode == InstallerMode
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) GetString(key string) string {
	return s.store.GetString(key)
}

func (s *Session) Set(key string, value interface{}) error {
	return s.store.Set(key, value)
}

// Values returns the current configuration store contents
func (s *Session) Values() map[string]string {
	return config.Values(s.store)
}

// Component is an installable unit whose default operations extract its payload archives into the target directory
type Component struct {
	name     string
	archives []string
	queue    *operations.Queue
}

var _ hooks.Component = &Component{}

func NewComponent(name string, archives ...string) *Component {
	return &Component{name, archives, operations.NewQueue()}
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) CreateDefaultOperations() error {
	for _, archive := range c.archives {
		c.queue.Add(operations.Extract, archive, constants.TargetDirPlaceholder)
	}
	return nil
}

func (c *Component) Queue() redist.Queuer {
	return c.queue
}

// Operations returns the component's queued operations in order
func (c *Component) Operations() []operations.Operation {
	return c.queue.Operations()
}

// FixedSystem reports a fixed architecture, as given on the command line
type FixedSystem string

func (f FixedSystem) CurrentCPUArchitecture() string {
	return sysinfo.NormalizeArch(string(f))
}

// DetectedSystem reports the architecture of this machine
type DetectedSystem struct{}

func (DetectedSystem) CurrentCPUArchitecture() string {
	return sysinfo.Architecture()
}
