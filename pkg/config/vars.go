package config

import "path/filepath"

// AppName is used in generating file system paths.
const AppName = "nmtkit"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/nmtkit by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/nmtkit/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the nmtkit.yaml file.
// Returns ~/.config/nmtkit/nmtkit.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "nmtkit.yaml")
}
