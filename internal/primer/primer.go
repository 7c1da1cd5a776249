package primer

import (
	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/output"
)

// Values carries the shared dependencies runners are primed with
type Values struct {
	output output.Outputer
	config config.Store
	system hooks.SystemInfo
}

func New(output output.Outputer, config config.Store, system hooks.SystemInfo) *Values {
	return &Values{
		output: output,
		config: config,
		system: system,
	}
}

type Outputer interface {
	Output() output.Outputer
}

type Configurer interface {
	Config() config.Store
}

type SystemInfoer interface {
	SystemInfo() hooks.SystemInfo
}

func (v *Values) Output() output.Outputer {
	return v.output
}

func (v *Values) Config() config.Store {
	return v.config
}

// SystemInfo is the system the hooks report on, the detected one unless the command line fixed an architecture
func (v *Values) SystemInfo() hooks.SystemInfo {
	return v.system
}

// SetSystemInfo replaces the system info, used when a command fixes the architecture
func (v *Values) SetSystemInfo(system hooks.SystemInfo) {
	v.system = system
}
