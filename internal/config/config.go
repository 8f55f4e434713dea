package config

import (
	"os"
	"os/user"
	"path/filepath"

	"envedit/internal/paths"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the tool configuration settings.
type AppConfig struct {
	Files  FilesConfig  `toml:"files"`
	Backup BackupConfig `toml:"backup"`

	// BackupDir is the expanded backup folder for runtime use, not saved to TOML.
	BackupDir string `toml:"-"`
}

// FilesConfig holds target file settings.
type FilesConfig struct {
	// Default is the file edited when no --file is given.
	Default string `toml:"default"`
}

// BackupConfig controls the timestamped backups taken before a write.
type BackupConfig struct {
	Enabled bool `toml:"enabled"`
	// Folder may contain ${XDG_*}, ${HOME} or ${USER} references.
	// Empty means the state directory default.
	Folder        string `toml:"folder"`
	RetentionDays int    `toml:"retention_days"`
}

// ExpandVariables expands environment-style variables in config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// When the file is missing or invalid, defaults are written back and used.
func LoadAppConfig() AppConfig {
	conf := AppConfig{
		Files: FilesConfig{
			Default: ".env",
		},
		Backup: BackupConfig{
			Enabled:       true,
			Folder:        "",
			RetentionDays: 3,
		},
	}

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			conf.BackupDir = resolveBackupDir(conf)
			return conf
		}
	}

	// If the file does not exist (or is invalid), save defaults
	conf.BackupDir = resolveBackupDir(conf)
	SaveAppConfig(conf)
	return conf
}

func resolveBackupDir(conf AppConfig) string {
	if conf.Backup.Folder == "" {
		return paths.GetBackupsDir()
	}
	return filepath.Clean(ExpandVariables(conf.Backup.Folder))
}

// SaveAppConfig writes the configuration to envedit.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
