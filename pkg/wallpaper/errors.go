package wallpaper

import "fmt"

// DownloadError indicates the image transfer failed or produced an
// empty file. The partial file has already been removed by the time
// this error is returned.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// ResizeError indicates the in-place resize failed. FileType carries the
// sniffed content type of the offending file for diagnostics, since a
// failed download or an HTML error page saved as .png is the usual cause.
type ResizeError struct {
	Path     string
	FileType string
	Err      error
}

func (e *ResizeError) Error() string {
	return fmt.Sprintf("resizing %s (detected type %s): %v", e.Path, e.FileType, e.Err)
}

func (e *ResizeError) Unwrap() error { return e.Err }
