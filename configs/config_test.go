package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Viper.GetInt("server.port"))
	assert.Equal(t, "http://localhost:5173", cfg.Viper.GetString("cors.origin"))
	assert.False(t, cfg.Viper.GetBool("rooms.require_membership"))
	assert.Equal(t, "whiteboard_events", cfg.Viper.GetString("redis.channel"))
}

func TestLoad_LegacyEnvironment(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("CORS_ORIGIN", "https://board.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4100, cfg.Viper.GetInt("server.port"))
	assert.Equal(t, "https://board.example.com", cfg.Viper.GetString("cors.origin"))
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms:\n  require_membership: true\nredis:\n  enabled: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Viper.GetBool("rooms.require_membership"))
	assert.True(t, cfg.Viper.GetBool("redis.enabled"))
	assert.Equal(t, 256, cfg.Viper.GetInt("rooms.send_buffer"))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
