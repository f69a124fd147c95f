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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.internal"
port = 5433
user = "timetable"
password = "secret"
dbname = "timetable"
sslmode = "require"

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
service_name = "timetable-test"
path = "/custom-metrics"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/custom-metrics", cfg.Metrics.Path)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
user = "timetable"
dbname = "timetable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 300, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "timetable-service", cfg.Metrics.ServiceName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing host", "[database]\nuser = \"timetable\"\ndbname = \"timetable\"\n"},
		{"missing user", "[database]\nhost = \"localhost\"\ndbname = \"timetable\"\n"},
		{"missing dbname", "[database]\nhost = \"localhost\"\nuser = \"timetable\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "timetable",
		Password: "secret",
		DBName:   "timetable",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=timetable password=secret dbname=timetable sslmode=disable",
		cfg.DSN())
}
