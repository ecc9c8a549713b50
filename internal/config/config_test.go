package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lambdcalculus/timespan/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCheckDefaults(t *testing.T) {
	conf, err := ReadCheck("")
	require.NoError(t, err)
	assert.Equal(t, CheckDefault(), conf)
	assert.Equal(t, logger.LevelInfo, conf.Level())
}

func TestReadCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spancheck.toml")
	body := `
iterations = 123
seed = 7
suites = ["abs"]
log_level = "debug"
log_outputs = ["stderr"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	conf, err := ReadCheck(path)
	require.NoError(t, err)
	assert.Equal(t, 123, conf.Iterations)
	assert.Equal(t, int64(7), conf.Seed)
	assert.Equal(t, []string{"abs"}, conf.Suites)
	assert.Equal(t, logger.LevelDebug, conf.Level())
	assert.Equal(t, []string{"stderr"}, conf.LogOutputs)
}

func TestReadCheckPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spancheck.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 9\n"), 0644))

	conf, err := ReadCheck(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), conf.Seed)
	assert.Equal(t, CheckDefault().Iterations, conf.Iterations)
	assert.Equal(t, CheckDefault().LogOutputs, conf.LogOutputs)
}

func TestReadCheckMissingFile(t *testing.T) {
	conf, err := ReadCheck(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	// Defaults still come back usable.
	require.NotNil(t, conf)
	assert.Equal(t, CheckDefault(), conf)
}

func TestLevelFallback(t *testing.T) {
	conf := CheckDefault()
	conf.LevelString = "loud"
	assert.Equal(t, logger.LevelInfo, conf.Level())
}
