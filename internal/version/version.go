package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "EnvEdit"

// CommandName is the name of the executable command (e.g., "envedit").
// It is initialized dynamically from the executable filename.
var CommandName = "envedit"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X envedit/internal/version.Version=vX.Y.Z"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	// Dynamically determine the command name from the executable
	baseName := filepath.Base(os.Args[0])
	ext := filepath.Ext(baseName)
	CommandName = strings.TrimSuffix(baseName, ext)

	// Fallback for dev runs (go run builds a temp binary)
	if strings.EqualFold(CommandName, ApplicationName) || strings.EqualFold(CommandName, "main") {
		CommandName = "envedit"
	}
}
