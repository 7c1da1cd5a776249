package redist

import (
	"fmt"
	"strings"

	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/redist"
	"github.com/PrismLauncher/installer/internal/session"
)

type primeable interface {
	primer.Outputer
	primer.SystemInfoer
}

type Params struct {
	Component string
	Archives  []string
	Policy    redist.Policy
}

type Redist struct {
	out    output.Outputer
	system hooks.SystemInfo
}

func New(p primeable) *Redist {
	return &Redist{p.Output(), p.SystemInfo()}
}

type outputFormat struct {
	session.ComponentPlan
}

func (f *outputFormat) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return f.ComponentPlan
	}
	return PlainComponent(f.ComponentPlan)
}

// PlainComponent renders a component plan as one operation per line below the component name
func PlainComponent(cp session.ComponentPlan) string {
	lines := []string{fmt.Sprintf("[BOLD]%s[/RESET]", cp.Name)}
	for _, op := range cp.Operations {
		lines = append(lines, "  "+op.String())
	}
	if cp.Redist.Skipped {
		lines = append(lines, fmt.Sprintf("  [YELLOW]%s[/RESET]", cp.Redist.Reason))
	}
	return strings.Join(lines, "\n")
}

func (r *Redist) Run(params *Params) error {
	script := hooks.NewComponentScript(r.system, params.Policy)
	component := session.NewComponent(params.Component, params.Archives...)

	result, err := script.CreateOperations(component)
	if err != nil {
		return locale.WrapError(err, "err_redist_component", "Could not construct the operations of component {{.V0}}", params.Component)
	}

	r.out.Print(&outputFormat{session.ComponentPlan{
		Name:       component.Name(),
		Redist:     result,
		Operations: component.Operations(),
	}})
	return nil
}
