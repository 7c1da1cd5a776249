package cmdtree

import (
	"github.com/PrismLauncher/installer/internal/captain"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/runners/redist"
)

func newRedistCommand(prime *primer.Values) *captain.Command {
	var arch string
	params := redist.Params{
		Component: constants.DefaultComponentName,
		Archives:  []string{constants.DefaultArchiveName},
	}

	return captain.NewCommand(
		"redist",
		locale.T("redist_description"),
		[]*captain.Flag{
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
				Value:       &params.Component,
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
			return redist.New(prime).Run(&params)
		},
	)
}
