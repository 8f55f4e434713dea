package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"envedit/internal/version"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
)

// configFileName is the name of the tool configuration file.
const configFileName = "envedit.toml"

// GetConfigFilePath returns the absolute path to the envedit.toml file.
// It places it in a subdirectory named after the application
// (e.g., ~/.config/envedit/envedit.toml).
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), configFileName)
}

// GetConfigDir returns the absolute path to the envedit configuration directory.
func GetConfigDir() string {
	appName := strings.ToLower(version.ApplicationName)
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appName)
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetStateDir returns the absolute path to the envedit state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	appName := strings.ToLower(version.ApplicationName)
	return filepath.Join(xdg.StateHome, appName)
}

// GetBackupsDir returns the default folder for timestamped file backups.
func GetBackupsDir() string {
	return filepath.Join(GetStateDir(), "backups")
}
