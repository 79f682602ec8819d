package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the civicmap home directory
const HomeEnv = "CIVICMAP_HOME"

// GetHome returns the civicmap home directory
// Priority order:
//  1. CIVICMAP_HOME environment variable (if set)
//  2. .civicmap in the current working directory
//
// Unlike log directories, the home is not created here; callers that write
// into it create what they need.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".civicmap"), nil
}

// DefaultConfigPath returns $CIVICMAP_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
