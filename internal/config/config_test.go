package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultDataFile, cfg.DataFile)
	assert.True(t, cfg.IsDev())
}

func TestLoadYAML(t *testing.T) {
	raw := `
port: 8080
env: production
data_file: /var/lib/jazey/data.json
admin:
  username: jazey
  password: hunter2
discord_webhook_url: https://discord.com/api/webhooks/1/abc
allowed_origins:
  - https://jazey.dev
  - "  "
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "/var/lib/jazey/data.json", cfg.DataFile)
	assert.Equal(t, "jazey", cfg.Admin.Username)
	assert.Equal(t, "hunter2", cfg.Admin.Password)
	assert.Equal(t, []string{"https://jazey.dev"}, cfg.AllowedOrigins, "blank origins are dropped")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ADMIN_USERNAME", "env-admin")
	t.Setenv("ADMIN_PASSWORD", "env-pass")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "env-admin", cfg.Admin.Username)
	assert.Equal(t, "env-pass", cfg.Admin.Password)
}

func TestNormalizeBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: -1"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
}
