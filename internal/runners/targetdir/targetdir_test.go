package targetdir

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/hooks"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/output"
	"github.com/PrismLauncher/installer/internal/primer"
	"github.com/PrismLauncher/installer/internal/session"
)

func newPrime(t *testing.T, format string, store config.Store) (*primer.Values, *bytes.Buffer) {
	out := &bytes.Buffer{}
	outputer, err := output.New(format, &output.Config{OutWriter: out, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)
	return primer.New(outputer, store, session.FixedSystem("x86_64")), out
}

func TestRun_Windows(t *testing.T) {
	store := config.NewMap(nil)
	prime, out := newPrime(t, "plain", store)

	require.NoError(t, New(prime).Run(&Params{OS: "win", Base: "PrismLauncher"}))

	assert.Equal(t, "Install directory: @HomeDir@/AppData/Local/Programs/PrismLauncher\n"+
		"Elevated install directory: @ApplicationsDir@/PrismLauncher\n", out.String())
	assert.Equal(t, "@HomeDir@/AppData/Local/Programs/PrismLauncher", store.GetString(constants.CfgTargetDir))
	assert.Equal(t, "@ApplicationsDir@/PrismLauncher", store.GetString(constants.CfgAdminTargetDir))
}

func TestRun_JSON(t *testing.T) {
	prime, out := newPrime(t, "json", config.NewMap(nil))

	require.NoError(t, New(prime).Run(&Params{OS: "mac", Base: "PrismLauncher"}))

	var result hooks.ControllerResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Applied)
	require.NotNil(t, result.TargetDirs)
	assert.False(t, result.TargetDirs.Supported)
	assert.Equal(t, "@ApplicationsDir@/PrismLauncher", result.TargetDirs.TargetDir)
	assert.Equal(t, result.TargetDirs.TargetDir, result.TargetDirs.AdminTargetDir)
}

func TestRun_Maintenance(t *testing.T) {
	store := config.NewMap(nil)
	prime, out := newPrime(t, "plain", store)

	require.NoError(t, New(prime).Run(&Params{OS: "win", Base: "PrismLauncher", Maintenance: true}))

	assert.Equal(t, "Running as maintenance tool, install directories left untouched\n", out.String())
	assert.False(t, store.IsSet(constants.CfgAdminTargetDir))
}

func TestRun_EmptyBase(t *testing.T) {
	prime, out := newPrime(t, "plain", config.NewMap(nil))

	err := New(prime).Run(&Params{OS: "win", Base: ""})
	require.Error(t, err)
	assert.True(t, locale.IsInputError(err))
	assert.Empty(t, out.String())
}
