package sysinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/logging"
)

var sysinfoCache *cache.Cache = cache.New(cache.NoExpiration, cache.NoExpiration)

// Cache keys used for storing/retrieving computed system information.
const (
	archInfoCacheKey = "archInfo"
)

// OsInfo represents an OS returned by OS().
type OsInfo int

const (
	// Linux represents the Linux operating system.
	Linux OsInfo = iota
	// Windows represents the Windows operating system.
	Windows
	// Mac represents the Macintosh operating system.
	Mac
	// UnknownOs represents an unknown operating system.
	UnknownOs
)

func (i OsInfo) String() string {
	switch i {
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	case Mac:
		return "MacOS"
	default:
		return "Unknown"
	}
}

// HostID returns the platform identifier the installer runtime uses for this OS
func (i OsInfo) HostID() string {
	switch i {
	case Windows:
		return constants.OSWindows
	case Mac:
		return constants.OSMac
	default:
		return constants.OSLinux
	}
}

// OS returns the operating system this binary was built for
func OS() OsInfo {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return Linux
	case "windows":
		return Windows
	case "darwin":
		return Mac
	default:
		return UnknownOs
	}
}

// Architecture returns the CPU architecture of the machine in the vocabulary of the installer runtime (x86_64, arm64,
// i386, arm). Unrecognized values are returned as reported.
func Architecture() string {
	if override := os.Getenv(constants.ArchOverrideEnvVarName); override != "" {
		return NormalizeArch(override)
	}

	if arch, found := sysinfoCache.Get(archInfoCacheKey); found {
		return arch.(string)
	}

	raw, err := host.KernelArch()
	if err != nil || raw == "" {
		logging.Debug("Could not detect kernel architecture, falling back to build architecture: %v", err)
		raw = runtime.GOARCH
	}

	arch := NormalizeArch(raw)
	logging.Debug("Detected architecture %s (reported as %s)", arch, raw)
	sysinfoCache.Set(archInfoCacheKey, arch, cache.NoExpiration)
	return arch
}

// NormalizeArch maps the many spellings of a CPU architecture (uname, GOARCH, Windows) onto the installer runtime's
func NormalizeArch(arch string) string {
	a := strings.ToLower(strings.TrimSpace(arch))
	switch a {
	case "x86_64", "amd64", "x64":
		return constants.ArchX86_64
	case "arm64", "aarch64", "armv8", "arm64e":
		return constants.ArchArm64
	case "i386", "i486", "i586", "i686", "386", "x86":
		return constants.ArchI386
	case "arm", "armv6l", "armv7l", "armhf":
		return constants.ArchArm
	}
	return a
}
