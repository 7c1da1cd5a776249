package hooks_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
	"github.com/PrismLauncher/installer/internal/operations"
	"github.com/PrismLauncher/installer/internal/redist"
)

type installerMock struct {
	*config.Map
	installer bool
}

func (i *installerMock) IsInstaller() bool {
	return i.installer
}

func newInstaller(installer bool, os, base string) *installerMock {
	return &installerMock{
		config.NewMap(map[string]interface{}{constants.CfgOS: os, constants.CfgTargetDir: base}),
		installer,
	}
}

type componentMock struct {
	queue      *operations.Queue
	defaultErr error
}

func (c *componentMock) Name() string {
	return "mock"
}

func (c *componentMock) CreateDefaultOperations() error {
	if c.defaultErr != nil {
		return c.defaultErr
	}
	c.queue.Add(operations.Extract, "payload.7z", constants.TargetDirPlaceholder)
	return nil
}

func (c *componentMock) Queue() redist.Queuer {
	return c.queue
}

type archMock string

func (a archMock) CurrentCPUArchitecture() string {
	return string(a)
}

func TestConstructInstaller(t *testing.T) {
	inst := newInstaller(true, "win", "PrismLauncher")

	res, err := hooks.NewController().Construct(inst)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	require.NotNil(t, res.TargetDirs)

	assert.Equal(t, "@HomeDir@/AppData/Local/Programs/PrismLauncher", inst.GetString(constants.CfgTargetDir))
	assert.Equal(t, "@ApplicationsDir@/PrismLauncher", inst.GetString(constants.CfgAdminTargetDir))
}

func TestConstructMaintenanceTool(t *testing.T) {
	inst := newInstaller(false, "win", "PrismLauncher")

	res, err := hooks.NewController().Construct(inst)
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Nil(t, res.TargetDirs)

	assert.Equal(t, "PrismLauncher", inst.GetString(constants.CfgTargetDir), "maintenance tool leaves the store alone")
	assert.False(t, inst.IsSet(constants.CfgAdminTargetDir))
}

func TestConstructEmptyBase(t *testing.T) {
	_, err := hooks.NewController().Construct(newInstaller(true, "win", ""))
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
}

func TestCreateOperations(t *testing.T) {
	for arch, file := range map[string]string{"x86_64": "vc_redist.x64.exe", "arm64": "vc_redist.arm64.exe"} {
		t.Run(arch, func(t *testing.T) {
			c := &componentMock{queue: operations.NewQueue()}
			res, err := hooks.NewComponentScript(archMock(arch), redist.SkipUnsupported).CreateOperations(c)
			require.NoError(t, err)
			assert.False(t, res.Skipped)

			assert.Equal(t, []operations.Operation{
				{Kind: operations.Extract, Arguments: []string{"payload.7z", "@TargetDir@"}},
				{Kind: operations.Execute, Arguments: []string{"@TargetDir@/" + file, "/quiet", "/norestart"}, Elevated: true},
				{Kind: operations.Delete, Arguments: []string{"@TargetDir@/" + file}},
			}, c.queue.Operations())
		})
	}
}

func TestCreateOperationsUnsupported(t *testing.T) {
	logged := &bytes.Buffer{}
	prev := logging.CurrentHandler()
	logging.SetHandler(logging.NewHandler(logged))
	defer logging.SetHandler(prev)

	c := &componentMock{queue: operations.NewQueue()}
	res, err := hooks.NewComponentScript(archMock("i386"), redist.SkipUnsupported).CreateOperations(c)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, []operations.Operation{
		{Kind: operations.Extract, Arguments: []string{"payload.7z", "@TargetDir@"}},
	}, c.queue.Operations(), "only the default operations remain")
	assert.Contains(t, logged.String(), "i386", "the skipped install step is reported")

	c = &componentMock{queue: operations.NewQueue()}
	_, err = hooks.NewComponentScript(archMock("i386"), redist.FailUnsupported).CreateOperations(c)
	require.Error(t, err)
	assert.True(t, redist.IsUnsupportedArch(err))
	assert.Equal(t, 1, c.queue.Len())
}

func TestCreateOperationsDefaultFailure(t *testing.T) {
	c := &componentMock{queue: operations.NewQueue(), defaultErr: errs.New("disk full")}
	_, err := hooks.NewComponentScript(archMock("x86_64"), redist.SkipUnsupported).CreateOperations(c)
	require.Error(t, err)
	assert.Contains(t, errs.JoinMessage(err), "disk full")
	assert.Equal(t, 0, c.queue.Len(), "nothing is queued after the default operations fail")
}
