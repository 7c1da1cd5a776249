package config_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/PrismLauncher/installer/internal/config"
	"github.com/PrismLauncher/installer/internal/constants"
	"github.com/PrismLauncher/installer/internal/errs"
)

type ConfigTestSuite struct {
	suite.Suite
	dir    string
	config *config.Instance
}

func (suite *ConfigTestSuite) BeforeTest(suiteName, testName string) {
	suite.dir = suite.T().TempDir()

	var err error
	suite.config, err = config.New(suite.dir)
	suite.Require().NoError(err)
}

func (suite *ConfigTestSuite) AfterTest(suiteName, testName string) {
	suite.Require().NoError(suite.config.Close())
}

func (suite *ConfigTestSuite) TestConfig() {
	suite.Equal(suite.dir, suite.config.ConfigPath())
}

func (suite *ConfigTestSuite) TestFilesExist() {
	suite.FileExists(filepath.Join(suite.config.ConfigPath(), constants.SessionFileName))
}

func (suite *ConfigTestSuite) TestPersists() {
	suite.Require().NoError(suite.config.Set(constants.CfgTargetDir, "@ApplicationsDir@/PrismLauncher"))
	suite.Require().NoError(suite.config.Close())

	reopened, err := config.New(suite.dir)
	suite.Require().NoError(err)
	defer reopened.Close()

	suite.Equal("@ApplicationsDir@/PrismLauncher", reopened.GetString(constants.CfgTargetDir))
	suite.Equal([]string{constants.CfgTargetDir}, reopened.AllKeys())
}

func (suite *ConfigTestSuite) TestGetThenSet() {
	suite.Require().NoError(suite.config.Set("count", 1))

	err := suite.config.GetThenSet("count", func(current interface{}) (interface{}, error) {
		return current.(int) + 1, nil
	})
	suite.Require().NoError(err)
	suite.Equal("2", suite.config.GetString("count"))

	err = suite.config.GetThenSet("count", func(current interface{}) (interface{}, error) {
		return config.CancelSet, nil
	})
	suite.Require().NoError(err)
	suite.Equal("2", suite.config.GetString("count"))

	err = suite.config.GetThenSet("count", func(current interface{}) (interface{}, error) {
		return nil, errs.New("nope")
	})
	suite.Error(err)
	suite.Equal("2", suite.config.GetString("count"))
}

func (suite *ConfigTestSuite) TestUnset() {
	suite.False(suite.config.IsSet("missing"))
	suite.Nil(suite.config.Get("missing"))
	suite.Equal("", suite.config.GetString("missing"))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func TestNewEmptyDir(t *testing.T) {
	_, err := config.New("")
	assert.Error(t, err)
}

func TestValues(t *testing.T) {
	stores := map[string]func(t *testing.T) config.Store{
		"sqlite": func(t *testing.T) config.Store {
			cfg, err := config.New(t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { cfg.Close() })
			return cfg
		},
		"map": func(t *testing.T) config.Store {
			return config.NewMap(nil)
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			cfg := newStore(t)

			require.NoError(t, cfg.Set("int", 1))
			require.NoError(t, cfg.Set("bool", true))
			require.NoError(t, cfg.Set(constants.CfgOS, "win"))
			require.NoError(t, cfg.Set(constants.CfgTargetDir, "@ApplicationsDir@/PrismLauncher"))

			assert.True(t, cfg.IsSet("bool"))
			assert.Equal(t, "1", cfg.GetString("int"))
			assert.Equal(t, map[string]string{
				"bool":                 "true",
				"int":                  "1",
				constants.CfgOS:        "win",
				constants.CfgTargetDir: "@ApplicationsDir@/PrismLauncher",
			}, config.Values(cfg))
		})
	}
}

// TestRace is meant to catch race conditions. Recommended to run with `-test.count <number> -race`
func TestRace(t *testing.T) {
	dir := t.TempDir()
	configReuse, err := config.New(dir)
	require.NoError(t, err, errs.JoinMessage(err))

	wg := sync.WaitGroup{}
	for x := 0; x < 20; x++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			cfg, err := config.New(dir)
			if !assert.NoError(t, err, errs.JoinMessage(err)) {
				return
			}
			defer cfg.Close()

			assert.NoError(t, cfg.Set("foo", "bar"), "iteration %d", y)
			assert.NoError(t, configReuse.Set("foo", "bar"))
		}(x)
	}
	wg.Wait()
	require.NoError(t, configReuse.Close())
}
