// Package paths resolves configuration and log file locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Application directory and file names.
const (
	AppDirName         = "worklog"
	DefaultLogFileName = "worklog.log"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/worklog (fallback ~/.config/worklog)
// macOS:   ~/Library/Application Support/worklog
// Windows: %APPDATA%/worklog
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// DefaultLogFile returns the platform-specific default log file path.
//
// Linux:   $XDG_DATA_HOME/worklog/worklog.log (fallback ~/.local/share/worklog/worklog.log)
// macOS:   ~/Library/Application Support/worklog/worklog.log
// Windows: %APPDATA%/worklog/worklog.log
func DefaultLogFile() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName, DefaultLogFileName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", AppDirName, DefaultLogFileName), nil
	default:
		// macOS and Windows: same base as the config dir.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName, DefaultLogFileName), nil
	}
}

// ResolveConfigDir returns the configuration directory: the flag when set,
// otherwise the platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	return DefaultConfigDir()
}

// ResolveLogFile returns the log file path following the precedence chain:
// flag > config.yaml log_file > DefaultLogFile().
func ResolveLogFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	return DefaultLogFile()
}
