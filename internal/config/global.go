package config

import (
	"os"
	"path/filepath"
)

// GlobalConfigPath returns ~/.livegen/config.yaml, or "" when the home
// directory cannot be determined.
func GlobalConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".livegen", "config.yaml")
}

// ExpandHome expands a leading ~ in path.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
