package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081

[database]
host = "db.local"
user = "agenda"
password = "secret"
dbname = "agenda"

[logs]
level = "debug"

[redis]
enabled = true
addr = "redis:6379"
availability_ttl_seconds = 30

[tenancy]
base_domain = "example.shop"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout, "defaults survive partial files")
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30, cfg.Redis.AvailabilityTTLSeconds)
	assert.Equal(t, "example.shop", cfg.Tenancy.BaseDomain)
	assert.Equal(t, "host=db.local port=5432 user=agenda password=secret dbname=agenda sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("DB_PORT", "five")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	assert.Error(t, cfg.Validate(), "database host is required")

	cfg.Database.Host = "localhost"
	cfg.Database.DBName = "agenda"
	assert.NoError(t, cfg.Validate())

	cfg.Logs.Level = "chatty"
	assert.Error(t, cfg.Validate())
}
