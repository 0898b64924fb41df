package xdg

import (
	"os"
	"path/filepath"

	adrg "github.com/adrg/xdg"
)

const appName = "preform"

// ConfigDir returns the preform directory under the XDG config home.
// PREFORM_XDG_CONFIG_HOME takes precedence over XDG_CONFIG_HOME.
// The directory is not created.
func ConfigDir() string {
	if custom := os.Getenv("PREFORM_XDG_CONFIG_HOME"); custom != "" {
		return filepath.Join(custom, appName)
	}
	if custom := os.Getenv("XDG_CONFIG_HOME"); custom != "" {
		return filepath.Join(custom, appName)
	}
	return filepath.Join(adrg.ConfigHome, appName)
}
