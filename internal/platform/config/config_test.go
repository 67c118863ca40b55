package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_HOST", "REDIS_DB", "ENABLE_RABBITMQ", "LISTING_CACHE_TTL", "MARKETPLACE_OPERATOR_ID"} {
		t.Setenv(key, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.EnableRabbitMQ)
	assert.Equal(t, 5*time.Minute, cfg.ListingCacheTTL)
	assert.NotEqual(t, uuid.Nil, cfg.OperatorID)
}

func TestLoad_FromEnvFile(t *testing.T) {
	operator := uuid.New()
	for _, key := range []string{"APP_PORT", "REDIS_DB", "ENABLE_RABBITMQ", "LISTING_CACHE_TTL", "MARKETPLACE_OPERATOR_ID"} {
		t.Setenv(key, "")
		// godotenv does not override variables that are already set
		require.NoError(t, os.Unsetenv(key))
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9000\nREDIS_DB=3\nENABLE_RABBITMQ=false\nLISTING_CACHE_TTL=30s\nMARKETPLACE_OPERATOR_ID=" + operator.String() + "\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg := Load(envFile)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.EnableRabbitMQ)
	assert.Equal(t, 30*time.Second, cfg.ListingCacheTTL)
	assert.Equal(t, operator, cfg.OperatorID)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")

	assert.Equal(t, 2*time.Second, getEnvAsDuration("SOME_DURATION", "2s"))
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Empty(t, cfg.JWTSecret)
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET must be set")

	t.Setenv("JWT_SECRET", "s3cret")

	cfg = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, cfg.Validate())
}
