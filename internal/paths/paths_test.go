package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/worklog", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "worklog"), got)
	})
}

func TestDefaultLogFile_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultLogFile()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/worklog/worklog.log", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultLogFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "worklog", "worklog.log"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("flag is made absolute", func(t *testing.T) {
		got, err := ResolveConfigDir("rel-config")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestResolveLogFile(t *testing.T) {
	t.Run("flag beats config value", func(t *testing.T) {
		got, err := ResolveLogFile("/tmp/flag.log", "/tmp/config.log")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag.log", got)
	})

	t.Run("config value beats default", func(t *testing.T) {
		got, err := ResolveLogFile("", "/tmp/config.log")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config.log", got)
	})

	t.Run("default when nothing set", func(t *testing.T) {
		want, err := DefaultLogFile()
		require.NoError(t, err)

		got, err := ResolveLogFile("", "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
