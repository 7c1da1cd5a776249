package cmdtree

import (
	"github.com/PrismLauncher/installer/internal/captain"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/runners/targetdir"
)

func newTargetDirCommand(prime *primer.Values) *captain.Command {
	params := targetdir.Params{
		OS:   defaultOS(),
		Base: constants.DefaultBaseTarget,
	}

	return captain.NewCommand(
		"targetdir",
		locale.T("targetdir_description"),
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
		},
		[]*captain.Argument{},
		func(_ *captain.Command, _ []string) error {
			return targetdir.New(prime).Run(&params)
		},
	).SetAliases("dirs")
}
