package installation

import "github.com/PrismLauncher/installer/internal/constants"

type VersionData struct {
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Revision string `json:"revision" yaml:"revision"`
}

// CurrentVersion describes this build of the installer tooling
func CurrentVersion() VersionData {
	return VersionData{
		Name:     constants.CommandName,
		Version:  constants.Version,
		Revision: constants.RevisionHash,
	}
}
