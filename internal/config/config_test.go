package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"HEALTHLOG_CONFIG",
		"HEALTHLOG_STORAGE_DRIVER",
		"HEALTHLOG_DB",
		"HEALTHLOG_STORAGE_PREFIX",
		"HEALTHLOG_REDIS_ADDR",
		"HEALTHLOG_REDIS_PASSWORD",
		"HEALTHLOG_REDIS_DB",
		"HEALTHLOG_ROLLOVER_POLICY",
		"HEALTHLOG_LOG_LEVEL",
		"HEALTHLOG_LOG_FORMAT",
		"HEALTHLOG_USER",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "healthlog.db", filepath.Base(cfg.Storage.Path))
	assert.Equal(t, time.Minute, cfg.Rollover.Interval)
	assert.Equal(t, time.Second, cfg.Rollover.Tick)
	assert.Equal(t, "previous-days", cfg.Rollover.Policy)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "local", cfg.User.ID)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
storage:
  path: /tmp/custom.db
  prefix: emagreca-
rollover:
  interval: 30s
  policy: current-day
logging:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.Storage.Path)
	assert.Equal(t, "emagreca-", cfg.Storage.Prefix)
	assert.Equal(t, 30*time.Second, cfg.Rollover.Interval)
	assert.Equal(t, time.Second, cfg.Rollover.Tick)
	assert.Equal(t, "current-day", cfg.Rollover.Policy)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
storage:
  driver: redis
  redis:
    addr: cache:6379
logging:
  level: info
`)
	t.Setenv("HEALTHLOG_CONFIG", path)
	t.Setenv("HEALTHLOG_REDIS_ADDR", "other:6380")
	t.Setenv("HEALTHLOG_REDIS_DB", "3")
	t.Setenv("HEALTHLOG_LOG_LEVEL", "debug")
	t.Setenv("HEALTHLOG_USER", "ana")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "other:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ana", cfg.User.ID)
	assert.Empty(t, cfg.Storage.Path)
}

func TestLoadExpandsEnvReferences(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("HEALTHLOG_TEST_DIR", dir)
	path := writeFile(t, `
storage:
  path: ${HEALTHLOG_TEST_DIR}/ledger.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ledger.db"), cfg.Storage.Path)
}

func TestLoadRejectsMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	isolate(t)
	t.Setenv("HEALTHLOG_STORAGE_DRIVER", "postgres")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	isolate(t)
	t.Setenv("HEALTHLOG_REDIS_DB", "one")
	_, err := Load("")
	require.Error(t, err)
}
