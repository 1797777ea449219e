package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

const validYAML = `
env: "test"
http_server:
  address: ":8081"
database:
  PG_HOST: "dbhost"
  PG_PORT: "5433"
  PG_USER: "testuser"
  PG_PASSWORD: "testpassword"
  PG_DBNAME: "testdb"
  PG_SSLMODE: "disable"
  MAX_OPEN_CONNS: 10
  MAX_IDLE_CONNS: 5
  CONN_MAX_LIFETIME: "10m"
  CONN_MAX_IDLE_TIME: "2m"
redis:
  REDIS_HOST: "redishost"
  REDIS_PORT: "6380"
cache:
  DEFAULT_TTL: "15m"
security:
  JWT_KEY: "test-signing-key"
stripe:
  STRIPE_CURRENCY: "jpy"
`

func TestMustLoad(t *testing.T) {
	t.Run("Success - loads from CONFIG_PATH", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("CONFIG_PATH", configPath)

		cfg := MustLoad()

		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.Addr)
		assert.Equal(t, "dbhost", cfg.Database.Host)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "redishost", cfg.RedisConnect.Host)
		assert.Equal(t, 15*time.Minute, cfg.Cache.DefaultTTL)
		assert.Equal(t, "test-signing-key", cfg.Security.JWTKey)
		assert.Equal(t, "jpy", cfg.Stripe.Currency)
	})

	t.Run("Environment variables override file values", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("CONFIG_PATH", configPath)
		t.Setenv("PG_HOST", "env-db-host")

		cfg := MustLoad()

		assert.Equal(t, "env-db-host", cfg.Database.Host)
	})
}

func TestGetDSN(t *testing.T) {
	db := Database{
		Host: "localhost", Port: "5432",
		User: "u", Password: "p", Name: "boxpack", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/boxpack?sslmode=disable", db.GetDSN())

	redis := RedisConnect{Host: "localhost", Port: "6379", DB: 2}
	assert.Equal(t, "redis://:@localhost:6379/2", redis.GetDSN())
}
