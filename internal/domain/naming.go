package domain

import "path/filepath"

// AppName is used for the configuration directory and the binary name.
const AppName = "makkah-counter"

// ConfigFileName is the configuration file name looked up in every config directory.
const ConfigFileName = "config.toml"

// GlobalConfigDir returns the global configuration directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// SessionLogPath returns the path to the session log file.
func SessionLogPath(logDir string) string {
	return filepath.Join(logDir, "counter.log")
}

// ShortSessionID returns the first 8 characters of a session ID for display.
func ShortSessionID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
