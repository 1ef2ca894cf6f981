// Package wallpaper turns a located remote image into the resized
// wallpaper file on disk.
package wallpaper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dixieflatline76/Terra/util/log"
)

// Download streams the image at url to destPath. On any failure the
// partially written file is removed before the error is returned, so a
// zero-length or truncated file is never left behind.
func Download(ctx context.Context, client *http.Client, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &DownloadError{URL: url, Err: fmt.Errorf("bad status: %s", resp.Status)}
	}

	file, err := os.Create(destPath)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}

	_, copyErr := io.Copy(file, resp.Body)
	closeErr := file.Close()

	if copyErr != nil {
		removePartial(destPath)
		return &DownloadError{URL: url, Err: copyErr}
	}
	if closeErr != nil {
		removePartial(destPath)
		return &DownloadError{URL: url, Err: closeErr}
	}

	info, err := os.Stat(destPath)
	if err != nil {
		removePartial(destPath)
		return &DownloadError{URL: url, Err: fmt.Errorf("downloaded file missing: %w", err)}
	}
	if info.Size() == 0 {
		removePartial(destPath)
		return &DownloadError{URL: url, Err: fmt.Errorf("downloaded file is empty")}
	}

	return nil
}

func removePartial(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove partial download %s: %v", path, err)
	}
}
