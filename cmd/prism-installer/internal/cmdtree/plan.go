package cmdtree

import (
	"github.com/PrismLauncher/installer/internal/captain"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/runners/plan"
)

func newPlanCommand(prime *primer.Values) *captain.Command {
	var arch string
	params := plan.Params{
		OS:         defaultOS(),
		Base:       constants.DefaultBaseTarget,
		Components: []string{constants.DefaultComponentName},
		Archives:   []string{constants.DefaultArchiveName},
	}

	return captain.NewCommand(
		"plan",
		locale.T("plan_description"),
		[]*captain.Flag{
			{
				Name:        "os",
				Description: locale.T("flag_os_description"),
				Value:       &params.OS,
			},
			{
				Name:        "base",
				Description: locale.T("flag_base_description"),
				Value:       &params.Base,
			},
			{
				Name:        "maintenance",
				Description: locale.T("flag_maintenance_description"),
				Value:       &params.Maintenance,
			},
			{
				Name:        "arch",
				Description: locale.T("flag_arch_description"),
				Value:       &arch,
			},
			{
				Name:        "policy",
				Description: locale.T("flag_policy_description"),
				Value:       &params.Policy,
			},
			{
				Name:        "component",
				Description: locale.T("flag_component_description"),
				Value:       &params.Components,
			},
			{
				Name:        "archive",
				Description: locale.T("flag_archive_description"),
				Value:       &params.Archives,
			},
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			primeSystem(prime, arch)
			return plan.New(prime).Run(&params)
		},
	)
}
