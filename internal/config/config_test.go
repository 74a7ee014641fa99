package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading
		config, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, "tictactoe", config.Game)
		assert.Equal(t, StorageMemory, config.Storage)
		assert.Equal(t, int64(0), config.Seed)
		assert.Equal(t, "localhost:6379", config.Redis.GetRedisAddr())
		assert.Equal(t, TwentyOne{StartingBankroll: 5, RichAt: 10}, config.TwentyOne)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: game and seed in the environment
		t.Setenv("TABLETOP_GAME", "twentyone")
		t.Setenv("TABLETOP_SEED", "42")

		// When: loading without a file
		config, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "twentyone", config.Game)
		assert.Equal(t, int64(42), config.Seed)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ngame: rps\nstorage: redis\nredis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading
		config, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "rps", config.Game)
		assert.Equal(t, StorageRedis, config.Storage)
		assert.Equal(t, "cache:6380", config.Redis.GetRedisAddr())
	})

	t.Run("Error on unknown storage", func(t *testing.T) {
		// Given: an unsupported storage name
		t.Setenv("TABLETOP_STORAGE", "postgres")

		// When: loading
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the storage field is reported
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
		assert.Contains(t, err.Error(), "Storage")
	})

	t.Run("Error on unknown game", func(t *testing.T) {
		// Given: a game that does not exist
		t.Setenv("TABLETOP_GAME", "chess")

		// When: loading
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the game field is reported
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Game")
	})

	t.Run("Error on a non-numeric redis port", func(t *testing.T) {
		t.Setenv("TABLETOP_REDIS_PORT", "six")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Port")
	})

	t.Run("Error on a bankroll that is already rich", func(t *testing.T) {
		t.Setenv("TABLETOP_STARTING_BANKROLL", "10")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "RichAt")
	})

	t.Run("MustLoad panics on bad config", func(t *testing.T) {
		t.Setenv("TABLETOP_STORAGE", "postgres")

		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
