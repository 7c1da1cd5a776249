package installation

import (
	"path"
	"strings"

	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/locale"
	"github.com/PrismLauncher/installer/internal/logging"
)

// TargetDirs are the install locations handed back to the installer runtime. Both still contain the runtime's path
// placeholders, which it expands itself.
type TargetDirs struct {
	// TargetDir is used when the installer runs as a regular user
	TargetDir string `json:"targetDir" yaml:"targetDir"`
	// AdminTargetDir is used when the installer runs elevated
	AdminTargetDir string `json:"adminTargetDir" yaml:"adminTargetDir"`
	// Supported is false when the platform only gets the generic system-wide fallback
	Supported bool `json:"supported" yaml:"supported"`
}

// Configurable is the part of the installer configuration store the resolver reads and writes
type Configurable interface {
	GetString(key string) string
	Set(key string, value interface{}) error
}

// ResolveTargetDirs computes the install locations for the given platform identifier and base directory name.
//
// On Windows a regular user installs below their own programs directory and an elevated install goes to the shared
// applications directory. Every other platform currently gets the shared applications directory for both.
func ResolveTargetDirs(hostOS, baseTarget string) (TargetDirs, error) {
	baseTarget = strings.TrimSpace(baseTarget)
	if strings.Trim(baseTarget, "/\\") == "" {
		return TargetDirs{}, locale.NewInputError("err_base_target_empty", "The base install directory name cannot be empty")
	}
	if escapesRoot(baseTarget) {
		return TargetDirs{}, locale.NewInputError("err_base_target_relative", "The base install directory name '{{.V0}}' cannot contain '.' or '..' path segments", baseTarget)
	}

	adminDir := constants.ApplicationsDirPlaceholder + "/" + baseTarget

	if hostOS == constants.OSWindows {
		return TargetDirs{
			TargetDir:      path.Join(constants.HomeDirPlaceholder, constants.UserProgramsSubPath) + "/" + baseTarget,
			AdminTargetDir: adminDir,
			Supported:      true,
		}, nil
	}

	// TODO: per-user install locations for x11 and mac, both currently install system wide
	return TargetDirs{
		TargetDir:      adminDir,
		AdminTargetDir: adminDir,
		Supported:      false,
	}, nil
}

// escapesRoot reports whether base has a segment that would move the path off the placeholder root once cleaned
func escapesRoot(base string) bool {
	segments := strings.FieldsFunc(base, func(r rune) bool { return r == '/' || r == '\\' })
	for _, seg := range segments {
		if seg == "." || seg == ".." {
			return true
		}
	}
	return false
}

// ApplyTargetDirs resolves the install locations from the platform and base directory name held by the configuration
// store, and writes them back. Only the installer calls this, never the maintenance tool.
func ApplyTargetDirs(cfg Configurable) (TargetDirs, error) {
	hostOS := cfg.GetString(constants.CfgOS)
	baseTarget := cfg.GetString(constants.CfgTargetDir)

	dirs, err := ResolveTargetDirs(hostOS, baseTarget)
	if err != nil {
		return TargetDirs{}, err
	}
	if !dirs.Supported {
		logging.Warning("Platform '%s' has no dedicated install location, using %s", hostOS, dirs.AdminTargetDir)
	}

	if err := cfg.Set(constants.CfgTargetDir, dirs.TargetDir); err != nil {
		return TargetDirs{}, locale.WrapError(err, "err_set_target_dir", "Could not store the install directory")
	}
	if err := cfg.Set(constants.CfgAdminTargetDir, dirs.AdminTargetDir); err != nil {
		return TargetDirs{}, locale.WrapError(err, "err_set_admin_target_dir", "Could not store the elevated install directory")
	}

	logging.Debug("Resolved %s=%s, %s=%s", constants.CfgTargetDir, dirs.TargetDir, constants.CfgAdminTargetDir, dirs.AdminTargetDir)
	return dirs, nil
}
