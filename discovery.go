// File: caep/discovery.go
package caep

import (
	"os"
	"path/filepath"
)

// findDefaultFile searches the default locations for the configuration
// file and returns the first that exists, or "" when none does:
//
//   - $XDG_CONFIG_HOME/<configID>/<configName> (~/.config when unset)
//   - /etc/<configName>
//
// An explicit --config argument bypasses this search entirely.
func findDefaultFile(configID, configName string) string {
	var candidates []string
	if dir := userConfigDir(configID); dir != "" {
		candidates = append(candidates, filepath.Join(dir, configName))
	}
	candidates = append(candidates, filepath.Join("/etc", configName))

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path
		}
	}
	return ""
}

// userConfigDir returns the per-user configuration directory for configID,
// honoring XDG_CONFIG_HOME.
func userConfigDir(configID string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configID)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", configID)
	}
	return ""
}
