package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("RPC_TIMEOUT", "")
	t.Setenv("SERVER_WRITE_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 10*time.Second, cfg.RPCTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigProductionRequiresMongo(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("MONGO_URI", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("RPC_TIMEOUT", "3")
	assert.Equal(t, 3*time.Second, getEnvDuration("RPC_TIMEOUT", time.Second))

	t.Setenv("RPC_TIMEOUT", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getEnvDuration("RPC_TIMEOUT", time.Second))

	t.Setenv("RPC_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getEnvDuration("RPC_TIMEOUT", time.Second))
}

func TestValidate(t *testing.T) {
	base := Config{
		MongoURI:     "mongodb://db:27017",
		RPCTimeout:   10 * time.Second,
		WriteTimeout: 15 * time.Second,
		LogLevel:     "info",
	}
	require.NoError(t, base.Validate())

	t.Run("rpc timeout longer than write timeout", func(t *testing.T) {
		c := base
		c.RPCTimeout = 20 * time.Second
		assert.Error(t, c.Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		c := base
		c.LogLevel = "verbose"
		assert.Error(t, c.Validate())
	})

	t.Run("zero rpc timeout", func(t *testing.T) {
		c := base
		c.RPCTimeout = 0
		assert.Error(t, c.Validate())
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("RECORD_HEALTH_CHECKS", "false")
	assert.False(t, getEnvBool("RECORD_HEALTH_CHECKS", true))

	t.Setenv("RECORD_HEALTH_CHECKS", "maybe")
	assert.True(t, getEnvBool("RECORD_HEALTH_CHECKS", true))
}
