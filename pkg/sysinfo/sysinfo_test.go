package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PrismLauncher/installer/internal/constants"
)

func TestNormalizeArch(t *testing.T) {
	tests := map[string]string{
		"x86_64":  constants.ArchX86_64,
		"AMD64":   constants.ArchX86_64,
		"x64":     constants.ArchX86_64,
		"aarch64": constants.ArchArm64,
		"arm64":   constants.ArchArm64,
		"i686":    constants.ArchI386,
		"386":     constants.ArchI386,
		"armv7l":  constants.ArchArm,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeArch(in), "input %q", in)
	}
	assert.Equal(t, "riscv64", NormalizeArch(" RISCV64 "), "unknown values pass through normalized")
}

func TestArchitectureOverride(t *testing.T) {
	t.Setenv(constants.ArchOverrideEnvVarName, "aarch64")
	assert.Equal(t, constants.ArchArm64, Architecture())
}

func TestArchitectureDetected(t *testing.T) {
	t.Setenv(constants.ArchOverrideEnvVarName, "")
	arch := Architecture()
	assert.NotEmpty(t, arch)
	assert.Equal(t, arch, Architecture(), "detection is memoized")
}

func TestHostID(t *testing.T) {
	assert.Equal(t, constants.OSWindows, Windows.HostID())
	assert.Equal(t, constants.OSMac, Mac.HostID())
	assert.Equal(t, constants.OSLinux, Linux.HostID())
	assert.Equal(t, constants.OSLinux, UnknownOs.HostID())
	assert.NotEqual(t, "", OS().String())
}
