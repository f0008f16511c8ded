package fsutil

import (
	"os"
	"path/filepath"
)

// AppName is the name of the application used in paths
const AppName = "doctabs"

// GetConfigDir returns the platform-specific configuration directory for doctabs.
// XDG_CONFIG_HOME is honoured on Linux through os.UserConfigDir.
//
// On Linux: ~/.config/doctabs/
// On macOS: ~/Library/Application Support/doctabs/
// On Windows: %AppData%\doctabs\
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}
