package wallpaper

import (
	"net/http"
	"os"

	"github.com/disintegration/imaging"
)

// Resize scales the image at path in place to exactly res, ignoring the
// source aspect ratio. Lanczos resampling, matching what the wrapped
// ImageMagick invocation used to produce.
func Resize(path string, res Resolution) error {
	src, err := imaging.Open(path)
	if err != nil {
		return &ResizeError{Path: path, FileType: detectFileType(path), Err: err}
	}

	resized := imaging.Resize(src, res.Width, res.Height, imaging.Lanczos)

	if err := imaging.Save(resized, path); err != nil {
		return &ResizeError{Path: path, FileType: detectFileType(path), Err: err}
	}

	return nil
}

// detectFileType sniffs the content type of the file at path for resize
// error diagnostics.
func detectFileType(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "unreadable"
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 || (err != nil && n <= 0) {
		return "empty"
	}
	return http.DetectContentType(buf[:n])
}
