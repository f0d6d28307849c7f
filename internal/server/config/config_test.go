package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DANTE_JWT_SECRET", "0123456789abcdef0123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.GeminiKey)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DANTE_JWT_SECRET", "")
	os.Unsetenv("DANTE_JWT_SECRET")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("DANTE_JWT_SECRET", "short")

	_, err := Load("")
	assert.ErrorContains(t, err, "at least 16 bytes")
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("DANTE_JWT_SECRET", "")
	os.Unsetenv("DANTE_JWT_SECRET")
	t.Setenv("DANTE_ADDR", "")
	os.Unsetenv("DANTE_ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DANTE_JWT_SECRET=from-dotenv-file-secret\nDANTE_ADDR=:9999\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DANTE_JWT_SECRET")
		os.Unsetenv("DANTE_ADDR")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "from-dotenv-file-secret", cfg.JWTSecret)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	t.Setenv("DANTE_JWT_SECRET", "0123456789abcdef0123")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
