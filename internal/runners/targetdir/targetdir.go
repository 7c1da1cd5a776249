package targetdir

import (
	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/session"
)

type primeable interface {
	primer.Outputer
	primer.Configurer
}

type Params struct {
	OS          string
	Base        string
	Maintenance bool
}

type TargetDir struct {
	out output.Outputer
	cfg config.Store
}

func New(p primeable) *TargetDir {
	return &TargetDir{p.Output(), p.Config()}
}

type outputFormat struct {
	hooks.ControllerResult
}

func (f *outputFormat) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return f.ControllerResult
	}
	if !f.Applied || f.TargetDirs == nil {
		return locale.Tl("targetdir_skipped", "Running as maintenance tool, install directories left untouched")
	}
	return locale.Tr("targetdir_resolved", f.TargetDirs.TargetDir, f.TargetDirs.AdminTargetDir)
}

func (t *TargetDir) Run(params *Params) error {
	mode := session.InstallerMode
	if params.Maintenance {
		mode = session.MaintenanceMode
	}

	s, err := session.New(t.cfg, mode, params.OS, params.Base)
	if err != nil {
		return locale.WrapError(err, "err_session_start", "Could not start the installer session")
	}

	result, err := hooks.NewController().Construct(s)
	if err != nil {
		return err
	}

	t.out.Print(&outputFormat{result})
	return nil
}
