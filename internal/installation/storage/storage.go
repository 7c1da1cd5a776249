package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/shibukawa/configdir"

	"github.com/PrismLauncher/installer/internal/condition"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
)

var (
	testPathOnce sync.Once
	testPath     string
	testPathErr  error
)

func configDirs() configdir.ConfigDir {
	return configdir.New(constants.LibraryOwner, constants.ConfigNamespace)
}

// AppDataPath is the directory installer sessions are persisted to when no session directory is given
func AppDataPath() (string, error) {
	if condition.InTest() {
		return appDataPathInTest()
	}

	// Account for HOME not being set, meaning querying global folders will fail
	// This is a workaround for docker envs that don't usually have $HOME set
	if _, envSet := os.LookupEnv("HOME"); !envSet && runtime.GOOS != "windows" {
		return AppDataPathWithParent(os.TempDir())
	}

	folders := configDirs().QueryFolders(configdir.Global)
	if len(folders) == 0 {
		return "", errs.New("Could not determine the user configuration directory")
	}
	return folders[0].Path, nil
}

func appDataPathInTest() (string, error) {
	testPathOnce.Do(func() {
		testPath, testPathErr = os.MkdirTemp("", "prism-installer-config")
		if testPathErr != nil {
			testPathErr = errs.Wrap(testPathErr, "Could not create temp dir")
			return
		}
		testPath, testPathErr = AppDataPathWithParent(testPath)
	})
	return testPath, testPathErr
}

// AppDataPathWithParent is the session directory below parentDir
func AppDataPathWithParent(parentDir string) (string, error) {
	if parentDir == "" {
		return "", errs.New("Parent directory cannot be empty")
	}
	dirs := configDirs()
	dirs.LocalPath = filepath.Join(parentDir, constants.ConfigNamespace)
	return dirs.QueryFolders(configdir.Local)[0].Path, nil
}
