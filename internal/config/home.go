package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDirName is the per-project directory holding config.yaml and logs.
const HomeDirName = ".prebate"

// FindConfigDir returns the closest ancestor of the working directory
// that contains .prebate/, or the working directory when none does.
func FindConfigDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	current := cwd
	for {
		info, err := os.Stat(filepath.Join(current, HomeDirName))
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return cwd, nil
}

// HomeConfigPath returns the config file to load when no --config flag is
// given. Priority order:
//  1. $PREBATE_HOME/config.yaml
//  2. .prebate/config.yaml under FindConfigDir
func HomeConfigPath() (string, error) {
	if home := os.Getenv("PREBATE_HOME"); home != "" {
		return filepath.Join(home, "config.yaml"), nil
	}

	dir, err := FindConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HomeDirName, "config.yaml"), nil
}
