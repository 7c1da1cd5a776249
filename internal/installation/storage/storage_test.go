package storage

import (
	"path/filepath"
	"testing"

	"github.com/shibukawa/configdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrismLauncher/installer/internal/constants"
)

func Test_AppDataPath(t *testing.T) {
	path1, err := AppDataPath()
	require.NoError(t, err)
	path2, err := AppDataPath()
	require.NoError(t, err)
	assert.Equal(t, path1, path2)
	assert.Equal(t, constants.ConfigNamespace, filepath.Base(path1))
}

func Test_AppDataPathWithParent(t *testing.T) {
	path, err := AppDataPathWithParent("/etc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/etc", constants.ConfigNamespace), path)

	_, err = AppDataPathWithParent("")
	assert.Error(t, err)
}

func Test_GlobalConfigDir(t *testing.T) {
	folders := configDirs().QueryFolders(configdir.Global)
	require.NotEmpty(t, folders)
	assert.Equal(t, constants.ConfigNamespace, filepath.Base(folders[0].Path))
	assert.Equal(t, constants.LibraryOwner, filepath.Base(filepath.Dir(folders[0].Path)))
}
