package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Pictures", "SatelliteWallpaper")

	path, err := OutputPath(dir, "epic_1b_20240101000000", Resolution{1920, 1080})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "epic_earth_epic_1b_20240101000000_1920x1080.png"), path)

	// The directory is created as a side effect
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOutputPathRejectsBadIDs(t *testing.T) {
	dir := t.TempDir()

	for _, id := range []string{"", "../../etc/passwd", "a/b", `a\b`, "a..b"} {
		_, err := OutputPath(dir, id, Resolution{1920, 1080})
		assert.Error(t, err, "id: %q", id)
	}
}
