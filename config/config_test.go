package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("AUTH_ALLOW_ADMIN_SIGNUP", "true")
	t.Setenv("QUEUE_DRIVER", "amqp")
	t.Setenv("STATUS_CACHE_TTL", "90s")
	t.Setenv("QUEUE_PUBLISH_TIMEOUT", "750ms")

	cfg := LoadConfig()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.AllowAdminSignup)
	assert.Equal(t, "amqp", cfg.Queue.Driver)
	assert.Equal(t, 750*time.Millisecond, cfg.Queue.PublishTimeout)
	assert.Equal(t, 90*time.Second, cfg.Cache.StatusTTL)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidValuePanics(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "many")

	assert.Panics(t, func() { LoadConfig() })
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "  " }, "JWT_SECRET"},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, "JWT_TTL"},
		{"bcrypt cost", func(c *Config) { c.Auth.BcryptCost = 40 }, "BCRYPT_COST"},
		{"queue driver", func(c *Config) { c.Queue.Driver = "kafka" }, "QUEUE_DRIVER"},
		{"pool size", func(c *Config) { c.Database.MinConns = 100 }, "DB_MIN_CONNS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_URLs(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "tickets", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tickets sslmode=disable timezone=UTC", c.DSN())
	assert.Equal(t, "pgx5://u:p@db:5432/tickets?sslmode=disable", c.MigrationURL())
}
