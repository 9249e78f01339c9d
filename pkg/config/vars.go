package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths and as a fallback
	// tag namespace.
	AppName = "ncbitax"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ncbitax by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/ncbitax by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DataDir returns the directory path for application data.
// Returns ~/.local/share/ncbitax by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ncbitax/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ncbitax/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CredentialsFilePath returns the full path to the credentials file.
// The file contains a username and a password on two lines.
func CredentialsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "credentials")
}

// SQLiteFilePath returns the default location of the SQLite tag store.
func SQLiteFilePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), AppName+".sqlite")
}
