// Package hooks holds the entry points the installer runtime calls: the controller hook at installer construction
// and the component hook while a component builds its operation list. The runtime is reached only through the
// interfaces below, so the hooks can run against the real runtime bridge or the simulated session alike.
package hooks

import (
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/installation"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/redist"
)

// Installer is the installer runtime's configuration surface
type Installer interface {
	installation.Configurable
	// IsInstaller is false when the runtime runs as the maintenance tool (updating or uninstalling)
	IsInstaller() bool
}

// Component is an installable unit with its own operation queue
type Component interface {
	Name() string
	// CreateDefaultOperations queues the operations the runtime performs for every component
	CreateDefaultOperations() error
	Queue() redist.Queuer
}

// SystemInfo answers questions about the machine being installed to
type SystemInfo interface {
	CurrentCPUArchitecture() string
}

// Controller is invoked once when the installer is constructed
type Controller struct{}

// ControllerResult reports what Construct did
type ControllerResult struct {
	Applied    bool                     `json:"applied" yaml:"applied"`
	TargetDirs *installation.TargetDirs `json:"targetDirs,omitempty" yaml:"targetDirs,omitempty"`
}

func NewController() *Controller {
	return &Controller{}
}

// Construct resolves the install directories. The maintenance tool keeps whatever directories it was installed with.
func (c *Controller) Construct(installer Installer) (ControllerResult, error) {
	if !installer.IsInstaller() {
		logging.Debug("Running as maintenance tool, not resolving %s", constants.CfgTargetDir)
		return ControllerResult{}, nil
	}

	dirs, err := installation.ApplyTargetDirs(installer)
	if err != nil {
		return ControllerResult{}, locale.WrapError(err, "err_construct_controller", "Could not resolve the install directories")
	}
	return ControllerResult{Applied: true, TargetDirs: &dirs}, nil
}

// ComponentScript is invoked once per component while its operation list is constructed
type ComponentScript struct {
	sys    SystemInfo
	policy redist.Policy
}

func NewComponentScript(sys SystemInfo, policy redist.Policy) *ComponentScript {
	return &ComponentScript{sys, policy}
}

// CreateOperations queues the runtime's default operations followed by the redistributable install and cleanup
func (s *ComponentScript) CreateOperations(component Component) (redist.Result, error) {
	if err := component.CreateDefaultOperations(); err != nil {
		return redist.Result{}, errs.Wrap(err, "Could not create default operations for %s", component.Name())
	}

	arch := s.sys.CurrentCPUArchitecture()
	result, err := redist.Inject(component.Queue(), arch, constants.TargetDirPlaceholder, s.policy)
	if err != nil {
		return result, errs.Wrap(err, "Could not queue redistributable for %s", component.Name())
	}
	return result, nil
}
