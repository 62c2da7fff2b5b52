package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "bookeasy"
dbname = "bookeasy"

[auth]
jwt_secret = "secret"

[app]
timezone = "Europe/Paris"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "log", cfg.Notifier.Backend)
	assert.Equal(t, 5, cfg.Auth.LoginMaxAttempts)
	assert.Equal(t, 168, cfg.Auth.TokenTTLHours)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
dbname = "bookeasy"
password = "from-file"
`)
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvJWTSecret, "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	path := writeConfig(t, `
[notifier]
backend = "kafka"

[app]
timezone = "Mars/Olympus"
`)
	t.Setenv(EnvJWTSecret, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.host")
	assert.Contains(t, err.Error(), "kafka_brokers")
	assert.Contains(t, err.Error(), "app.timezone")
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestDSN_QuotesPassword(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", DBName: "n", SSLMode: "disable", Password: "p'a ss"}
	assert.Equal(t, `host=db port=5432 user=u dbname=n sslmode=disable password='p\'a ss'`, d.DSN())
}
