package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DB_PATH", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadServerSettings_Defaults(t *testing.T) {
	clearServerEnv(t)

	s, err := LoadServerSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerSettings(), s)
	assert.Equal(t, ":8080", s.Addr())
}

func TestLoadServerSettings_FromEnvFile(t *testing.T) {
	clearServerEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nDB_PATH=/tmp/plans.db\nLOG_LEVEL=debug\nCORS_ORIGINS=http://a.test, http://b.test\n"), 0644))

	s, err := LoadServerSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", s.Port)
	assert.Equal(t, "/tmp/plans.db", s.DBPath)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.CORSOrigins)
}

func TestLoadServerSettings_EnvWinsOverFile(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0644))

	s, err := LoadServerSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", s.Port)
}

func TestLoadServerSettings_BadLogLevel(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := LoadServerSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
