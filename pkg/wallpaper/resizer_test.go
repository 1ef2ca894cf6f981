package wallpaper

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.png")
	src := imaging.New(2048, 2048, color.NRGBA{R: 10, G: 80, B: 160, A: 255})
	require.NoError(t, imaging.Save(src, path))

	err := Resize(path, Resolution{Width: 1920, Height: 1080})
	require.NoError(t, err)

	resized, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, resized.Bounds().Dx())
	assert.Equal(t, 1080, resized.Bounds().Dy())
}

func TestResizeNonImageReportsFileType(t *testing.T) {
	// An HTML error page saved with a .png extension, the classic
	// symptom of a broken download.
	path := filepath.Join(t.TempDir(), "earth.png")
	require.NoError(t, os.WriteFile(path, []byte("<html><body>503</body></html>"), 0644))

	err := Resize(path, Resolution{Width: 1920, Height: 1080})
	require.Error(t, err)

	var rsErr *ResizeError
	require.True(t, errors.As(err, &rsErr), "expected *ResizeError, got %T: %v", err, err)
	assert.Contains(t, rsErr.FileType, "text/html")
	assert.Contains(t, err.Error(), "text/html")
}

func TestResizeMissingFile(t *testing.T) {
	err := Resize(filepath.Join(t.TempDir(), "nope.png"), Resolution{Width: 100, Height: 100})

	var rsErr *ResizeError
	require.True(t, errors.As(err, &rsErr), "expected *ResizeError, got %T: %v", err, err)
	assert.Equal(t, "unreadable", rsErr.FileType)
}
