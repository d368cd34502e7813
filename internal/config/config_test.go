package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Quiet)
	assert.Equal(t, "org.springframework.web.bind.annotation.RequestMapping", cfg.Endpoint.MappingType)
	assert.False(t, cfg.HasModel())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(`
model:
  files: [spring.yaml, extra.yaml]
  packages: [alias-resolver/annotations/web]
cache:
  enabled: false
log:
  level: debug
`), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"spring.yaml", "extra.yaml"}, cfg.Model.Files)
	assert.Equal(t, []string{"alias-resolver/annotations/web"}, cfg.Model.Packages)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.HasModel())
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  quiet: true\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.True(t, cfg.Log.Quiet)

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALIAS_RESOLVER_LOG_LEVEL", "warn")
	t.Setenv("ALIAS_RESOLVER_CACHE_ENABLED", "false")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALIAS_RESOLVER_LOG_LEVEL", "loud")

	_, err := Load(New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLogConfig_NewLogger(t *testing.T) {
	logger, err := LogConfig{Quiet: true, Level: "loud"}.NewLogger()
	require.NoError(t, err, "quiet ignores the level")
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))

	logger, err = LogConfig{Level: "debug"}.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = LogConfig{Level: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = LogConfig{Level: "loud"}.NewLogger()
	require.Error(t, err)
}
