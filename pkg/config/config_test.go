package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "big", config.Endianness)
	assert.True(t, config.VerifyChecksum)
	assert.Equal(t, 16, config.Output.Width)
	assert.False(t, config.LittleEndian())
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("load saved config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "runestream_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		saved := &Config{
			Endianness:     "little",
			VerifyChecksum: false,
			Output:         Output{Width: 8},
		}
		require.NoError(t, SaveConfig(saved, configPath))

		loaded, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
		assert.True(t, loaded.LittleEndian())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/config.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid endianness", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "runestream_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("endianness: middle\noutput:\n  width: 16\n"), 0600))

		_, err = LoadConfig(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endianness")
	})

	t.Run("invalid width", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "runestream_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("endianness: big\noutput:\n  width: 0\n"), 0600))

		_, err = LoadConfig(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "width")
	})
}
