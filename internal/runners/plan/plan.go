package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/redist"
	redistRunner "github.com/PrismLauncher/installer/internal/runners/redist"
	"github.com/PrismLauncher/installer/internal/session"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
	primer.SystemInfoer
}

type Params struct {
	OS          string
	Base        string
	Maintenance bool
	Policy      redist.Policy
	Components  []string
	Archives    []string
}

type Plan struct {
	out    output.Outputer
	cfg    config.Store
	system hooks.SystemInfo
}

func New(p primeable) *Plan {
	return &Plan{p.Output(), p.Config(), p.SystemInfo()}
}

type outputFormat struct {
	*session.Plan
}

func (f *outputFormat) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return f.Plan
	}

	var sections []string

	header := []string{fmt.Sprintf("[BOLD]Mode:[/RESET] %s", f.Mode)}
	if f.TargetDirs != nil {
		header = append(header, locale.Tr("targetdir_resolved", f.TargetDirs.TargetDir, f.TargetDirs.AdminTargetDir))
	}
	sections = append(sections, strings.Join(header, "\n"))

	keys := make([]string, 0, len(f.Values))
	for k := range f.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := []string{"[BOLD]Configuration[/RESET]"}
	for _, k := range keys {
		values = append(values, fmt.Sprintf("  %s = %s", k, f.Values[k]))
	}
	sections = append(sections, strings.Join(values, "\n"))

	for _, cp := range f.Components {
		sections = append(sections, redistRunner.PlainComponent(cp))
	}

	return strings.Join(sections, "\n\n")
}

func (p *Plan) Run(params *Params) error {
	mode := session.InstallerMode
	if params.Maintenance {
		mode = session.MaintenanceMode
	}

	s, err := session.New(p.cfg, mode, params.OS, params.Base)
	if err != nil {
		return locale.WrapError(err, "err_session_start", "Could not start the installer session")
	}

	var components []*session.Component
	for _, name := range params.Components {
		components = append(components, session.NewComponent(name, params.Archives...))
	}

	result, err := s.Run(hooks.NewController(), hooks.NewComponentScript(p.system, params.Policy), components...)
	if err != nil {
		return err
	}

	p.out.Print(&outputFormat{result})
	return nil
}
