// Package paths provides XDG-compliant path resolution for the playground.
//
// Resolution order:
// 1. PLAYGROUND_HOME (portable root) → $PLAYGROUND_HOME/{config,data,state,cache}
// 2. XDG env vars → $XDG_*_HOME/playground
// 3. Platform defaults → ~/.config/playground, ~/.local/share/playground, etc.
package paths

import (
	"os"
	"path/filepath"
)

const appName = "playground"

// home resolves one base directory: the portable root's sub wins over the
// XDG variable, which wins over the platform default under $HOME.
func home(sub, xdgVar string, fallback ...string) string {
	if root := os.Getenv("PLAYGROUND_HOME"); root != "" {
		return filepath.Join(root, sub)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append(append([]string{homeDir}, fallback...), appName)...)
	}
	return ""
}

// ConfigDir returns the configuration directory.
// Used for the global playground.yml.
func ConfigDir() string {
	return home("config", "XDG_CONFIG_HOME", ".config")
}

// DataDir returns the data directory.
// Used for the default state database.
func DataDir() string {
	return home("data", "XDG_DATA_HOME", ".local", "share")
}

// StateDir returns the state directory.
// Used for logs.
func StateDir() string {
	return home("state", "XDG_STATE_HOME", ".local", "state")
}

// CacheDir returns the cache directory.
// Used for composed previews.
func CacheDir() string {
	return home("cache", "XDG_CACHE_HOME", ".cache")
}

// GlobalConfigFile returns the path of the global configuration layer.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "playground.yml")
}

// DefaultStateFile returns the default location of the persisted buffers
// and version archive for a storage backend kind.
func DefaultStateFile(kind string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	if kind == "sqlite" {
		return filepath.Join(dir, "state.db")
	}
	return filepath.Join(dir, "state.yml")
}

// LogDir returns the directory the file log sink writes into.
func LogDir() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs")
}

// EnsureDirs creates all playground directories if they don't exist.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), DataDir(), StateDir(), CacheDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
