package constants

// LibraryName contains the main name of this library
const LibraryName = "installer"

// LibraryOwner contains the name of the owner of this library
const LibraryOwner = "PrismLauncher"

// LibraryNamespace is the namespace that the library belongs to
const LibraryNamespace = "github.com/PrismLauncher/"

// CommandName holds the name of our command
const CommandName = "prism-installer"

// ConfigNamespace is the directory below the user's config directory persisted sessions live in
const ConfigNamespace = "prism-installer"

// DefaultBaseTarget is the leaf directory the launcher is installed into when the package does not specify one
const DefaultBaseTarget = "PrismLauncher"

// DefaultComponentName is the name of the installable component carrying the launcher
const DefaultComponentName = "org.prismlauncher.PrismLauncher"

// DefaultArchiveName is the payload archive the launcher component extracts
const DefaultArchiveName = "PrismLauncher.7z"

// Installer configuration keys read and written by the hooks
const (
	// CfgTargetDir holds the base directory name on entry and the resolved per-user install path on exit
	CfgTargetDir = "TargetDir"

	// CfgAdminTargetDir holds the install path used when the installer runs elevated
	CfgAdminTargetDir = "AdminTargetDir"

	// CfgOS holds the platform identifier of the installer runtime
	CfgOS = "os"
)

// Platform identifiers as reported by the installer runtime under CfgOS
const (
	OSWindows = "win"
	OSLinux   = "x11"
	OSMac     = "mac"
)

// Path placeholders expanded by the installer runtime. They must be written out verbatim.
const (
	HomeDirPlaceholder         = "@HomeDir@"
	ApplicationsDirPlaceholder = "@ApplicationsDir@"
	TargetDirPlaceholder       = "@TargetDir@"
)

// UserProgramsSubPath is the per-user programs directory below the home directory on Windows
const UserProgramsSubPath = "AppData/Local/Programs"

// CPU architectures as reported by the installer runtime
const (
	ArchX86_64 = "x86_64"
	ArchArm64  = "arm64"
	ArchI386   = "i386"
	ArchArm    = "arm"
)

// Bundled Visual C++ redistributable installers, staged into the target directory by the package payload
const (
	RedistX64Filename   = "vc_redist.x64.exe"
	RedistArm64Filename = "vc_redist.arm64.exe"
)

// RedistInstallArgs are passed to the redistributable installer to install silently without rebooting
var RedistInstallArgs = []string{"/quiet", "/norestart"}

// VerboseEnvVarName enables debug logging
const VerboseEnvVarName = "PRISM_INSTALLER_VERBOSE"

// ArchOverrideEnvVarName overrides the detected CPU architecture
const ArchOverrideEnvVarName = "PRISM_INSTALLER_ARCH_OVERRIDE"

// SessionEnvVarName sets the directory the installer session is persisted to
const SessionEnvVarName = "PRISM_INSTALLER_SESSION"

// SessionFileName is the sqlite database holding a persisted installer session
const SessionFileName = "session.db"

// SessionLockFileName guards writes to SessionFileName across processes
const SessionLockFileName = "session.lock"

// Version and RevisionHash are set at build time through -ldflags
var (
	Version      = "0.0.0-dev"
	RevisionHash = "unknown"
)
