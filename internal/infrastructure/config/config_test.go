package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"STORE_APP_NAME":                os.Getenv("STORE_APP_NAME"),
		"STORE_APP_ENV":                 os.Getenv("STORE_APP_ENV"),
		"STORE_APP_PORT":                os.Getenv("STORE_APP_PORT"),
		"STORE_DATABASE_HOST":           os.Getenv("STORE_DATABASE_HOST"),
		"STORE_DATABASE_PORT":           os.Getenv("STORE_DATABASE_PORT"),
		"STORE_DATABASE_USER":           os.Getenv("STORE_DATABASE_USER"),
		"STORE_DATABASE_PASSWORD":       os.Getenv("STORE_DATABASE_PASSWORD"),
		"STORE_DATABASE_DBNAME":         os.Getenv("STORE_DATABASE_DBNAME"),
		"STORE_DATABASE_SSLMODE":        os.Getenv("STORE_DATABASE_SSLMODE"),
		"STORE_DATABASE_MAX_OPEN_CONNS": os.Getenv("STORE_DATABASE_MAX_OPEN_CONNS"),
		"STORE_DATABASE_MAX_IDLE_CONNS": os.Getenv("STORE_DATABASE_MAX_IDLE_CONNS"),
		"STORE_JWT_SECRET":              os.Getenv("STORE_JWT_SECRET"),
		"STORE_ORDER_API_BASE_URL":      os.Getenv("STORE_ORDER_API_BASE_URL"),
		"STORE_ORDER_API_TIMEOUT":       os.Getenv("STORE_ORDER_API_TIMEOUT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8001", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "storefront", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiration)
		assert.Equal(t, "storefront", cfg.JWT.Issuer)
		assert.Equal(t, "http://localhost:8001/api", cfg.OrderAPI.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.OrderAPI.Timeout)
		assert.Equal(t, 30*time.Second, cfg.OrderAPI.SubmitTimeout)
	})

	t.Run("loads values from environment variables with STORE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_NAME", "test-store")
		os.Setenv("STORE_APP_ENV", "testing")
		os.Setenv("STORE_APP_PORT", "9000")
		os.Setenv("STORE_DATABASE_HOST", "testdb.local")
		os.Setenv("STORE_DATABASE_PORT", "5433")
		os.Setenv("STORE_DATABASE_USER", "testuser")
		os.Setenv("STORE_DATABASE_PASSWORD", "testpass")
		os.Setenv("STORE_DATABASE_DBNAME", "testdb")
		os.Setenv("STORE_DATABASE_SSLMODE", "require")
		os.Setenv("STORE_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("STORE_DATABASE_MAX_IDLE_CONNS", "10")
		os.Setenv("STORE_ORDER_API_BASE_URL", "http://orders.internal:8080/api")
		os.Setenv("STORE_ORDER_API_TIMEOUT", "5s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-store", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "http://orders.internal:8080/api", cfg.OrderAPI.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.OrderAPI.Timeout)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("STORE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"STORE_APP_ENV":           os.Getenv("STORE_APP_ENV"),
		"STORE_JWT_SECRET":        os.Getenv("STORE_JWT_SECRET"),
		"STORE_DATABASE_PASSWORD": os.Getenv("STORE_DATABASE_PASSWORD"),
		"STORE_DATABASE_SSLMODE":  os.Getenv("STORE_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_ENV", "production")
		os.Setenv("STORE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("STORE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_ENV", "production")
		os.Setenv("STORE_JWT_SECRET", "short-secret")
		os.Setenv("STORE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("STORE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_ENV", "production")
		os.Setenv("STORE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("STORE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("rejects sslmode disable in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_ENV", "production")
		os.Setenv("STORE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("STORE_DATABASE_PASSWORD", "secure-password")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("passes with secure production settings", func(t *testing.T) {
		clearEnv()
		os.Setenv("STORE_APP_ENV", "production")
		os.Setenv("STORE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("STORE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("STORE_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("escapes special characters in credentials", func(t *testing.T) {
		d := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "store user",
			Password: "p@ss/word#1",
			DBName:   "storefront",
			SSLMode:  "disable",
		}

		dsn := d.DSN()
		assert.Contains(t, dsn, "postgres://")
		assert.Contains(t, dsn, "store%20user")
		assert.NotContains(t, dsn, "p@ss/word#1")
		assert.Contains(t, dsn, "sslmode=disable")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}
