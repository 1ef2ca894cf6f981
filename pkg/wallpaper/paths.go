package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath ensures dir exists and returns the deterministic wallpaper
// path for the given image id and target resolution:
// <dir>/epic_earth_<id>_<WIDTHxHEIGHT>.png
func OutputPath(dir, id string, res Resolution) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return filepath.Join(dir, fmt.Sprintf("epic_earth_%s_%s.png", id, res)), nil
}

// validateID ensures the id does not contain path traversal characters.
// The id comes from a remote API and ends up in a filesystem path.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("invalid image id: empty")
	}
	if strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid image id %q: contains illegal characters", id)
	}
	return nil
}
