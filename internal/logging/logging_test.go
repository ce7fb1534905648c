package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_InvalidEnvironment(t *testing.T) {
	t.Parallel()

	for _, env := range []Environment{"", "banana", "staging"} {
		_, err := New(Config{Environment: env})
		require.Error(t, err, env)
		assert.Contains(t, err.Error(), "invalid environment")
	}
}

func TestConfig_DefaultLevel(t *testing.T) {
	t.Parallel()

	tests := map[Environment]zapcore.Level{
		EnvironmentDevelopment: zapcore.DebugLevel,
		EnvironmentLocal:       zapcore.DebugLevel,
		EnvironmentProduction:  zapcore.InfoLevel,
	}
	for env, want := range tests {
		zc, err := Config{Environment: env}.zapConfig()
		require.NoError(t, err, env)
		assert.Equal(t, want, zc.Level.Level(), env)
		assert.Equal(t, "json", zc.Encoding, env)
		assert.True(t, zc.DisableStacktrace, env)

		logger, err := New(Config{Environment: env})
		require.NoError(t, err, env)
		assert.NotNil(t, logger)
	}
}

func TestConfig_CustomLevel(t *testing.T) {
	t.Parallel()

	zc, err := Config{Environment: EnvironmentProduction, Level: "error"}.zapConfig()
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, zc.Level.Level())

	zc, err = Config{Environment: EnvironmentLocal, Level: "warn"}.zapConfig()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, zc.Level.Level())
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Environment: EnvironmentProduction, Level: "invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid level")
}

func TestNew_WritesJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	logger, err := New(Config{Environment: EnvironmentProduction, OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("allocated")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"level":"INFO"`)
	assert.Contains(t, string(data), `"msg":"allocated"`)
	assert.NotContains(t, string(data), "hidden")
}
