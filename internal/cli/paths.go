package cli

import (
	"os"
	"path/filepath"
)

// cacheDir returns the render cache directory, creating it if needed.
// Defaults to $XDG_CACHE_HOME/svgforge (or the OS equivalent).
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "svgforge")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
