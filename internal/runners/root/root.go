package root

import (
	"github.com/PrismLauncher/installer/internal/installation"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
)

type Options struct {
	Version bool
}

func NewOptions() *Options {
	return &Options{}
}

type primeable interface {
	primer.Outputer
}

type Root struct {
	opts *Options
	out  output.Outputer
}

func New(opts *Options, prime primeable) *Root {
	return &Root{
		opts: opts,
		out:  prime.Output(),
	}
}

type versionOutput struct {
	installation.VersionData
}

func (v *versionOutput) MarshalOutput(format output.Format) interface{} {
	if format != output.PlainFormatName {
		return v.VersionData
	}
	return locale.T("version_info", v.VersionData)
}

// Run prints the version when asked to, and the usage otherwise
func (r *Root) Run(usageFunc func() error) error {
	logging.Debug("Execute")

	if r.opts.Version {
		r.out.Print(&versionOutput{installation.CurrentVersion()})
		return nil
	}
	return usageFunc()
}
