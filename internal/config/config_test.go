package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOML = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "noshe_bookings"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/booking-service.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "nc-booking-service"

[smtp]
host = "smtp.gmail.com"
port = 587
user = "bookings@noshecambridge.co.uk"
password = ""
from = "bookings@noshecambridge.co.uk"
timeout = 10

[restaurant]
name = "Noshe Cambridge"
phone = "07964 624055"
manager_email = "noshecambridge@gmail.com"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "noshe_bookings", cfg.Database.DBName)
	assert.Equal(t, "Noshe Cambridge", cfg.Restaurant.Name)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=noshe_bookings sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret-from-env")
	t.Setenv("SMTP_PASS", "app-password")

	cfg, err := Load(writeConfig(t, validTOML))
	require.NoError(t, err)

	assert.Equal(t, "secret-from-env", cfg.Database.Password)
	assert.Equal(t, "app-password", cfg.SMTP.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	bad := `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "noshe_bookings"
`
	_, err := Load(writeConfig(t, bad))
	assert.ErrorContains(t, err, "http_port")
}
