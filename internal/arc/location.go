package arc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultSidebarPath returns the platform's default StorableSidebar.json
// location. On Windows the Arc package directory name varies, so the
// Packages directory is globbed for it. Platforms without a known location
// return an error; the caller should ask for an explicit path.
func DefaultSidebarPath() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", "Arc", "StorableSidebar.json"), nil

	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", errors.New("LOCALAPPDATA is not set")
		}
		matches, err := filepath.Glob(filepath.Join(local, "Packages", "TheBrowserCompany.Arc*"))
		if err != nil {
			return "", err
		}
		for _, dir := range matches {
			path := filepath.Join(dir, "LocalCache", "Local", "Arc", "StorableSidebar.json")
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		return "", errors.New("no Arc data found under LOCALAPPDATA")
	}

	return "", fmt.Errorf("no default Arc data location on %s", runtime.GOOS)
}
