// Package epic locates the most recent natural-color Earth image
// published by NASA's EPIC imagery API.
package epic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/dixieflatline76/Terra/config"
)

// datePathRe is the required shape of the archive date path segment.
var datePathRe = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)

// Client resolves the latest image from an EPIC metadata endpoint.
type Client struct {
	apiURL     string
	archiveURL string
	latest     string // "first" or "last"
	client     *http.Client
}

// NewClient creates a locator for the endpoints in cfg, issuing requests
// through the given HTTP client.
func NewClient(cfg *config.Config, client *http.Client) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		archiveURL: strings.TrimRight(cfg.ArchiveURL, "/"),
		latest:     cfg.Latest,
		client:     client,
	}
}

// Latest fetches the metadata endpoint and resolves the most recent
// record into an ImageRecord. Transport problems surface as *FetchError,
// malformed or incomplete metadata as *ParseError.
func (c *Client) Latest(ctx context.Context) (ImageRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return ImageRecord{}, &FetchError{URL: c.apiURL, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ImageRecord{}, &FetchError{URL: c.apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageRecord{}, &FetchError{URL: c.apiURL, Err: fmt.Errorf("bad status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageRecord{}, &FetchError{URL: c.apiURL, Err: err}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ImageRecord{}, &FetchError{URL: c.apiURL, Err: fmt.Errorf("empty response body")}
	}

	var records []metadataRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return ImageRecord{}, &ParseError{Reason: "response is not a JSON array", Err: err}
	}
	// A literal "null" body decodes to a nil slice, so it lands here too.
	if len(records) == 0 {
		return ImageRecord{}, &ParseError{Reason: "metadata array is empty"}
	}

	rec := records[len(records)-1]
	if c.latest == "first" {
		rec = records[0]
	}

	if rec.Image == "" {
		return ImageRecord{}, &ParseError{Reason: "record has no image field"}
	}
	if rec.Date == "" {
		return ImageRecord{}, &ParseError{Reason: "record has no date field"}
	}

	datePath, err := datePathFromTimestamp(rec.Date)
	if err != nil {
		return ImageRecord{}, &ParseError{Reason: fmt.Sprintf("invalid date %q", rec.Date), Err: err}
	}

	return ImageRecord{
		RemoteURL: c.archiveURL + "/" + datePath + "/png/" + rec.Image + ".png",
		Name:      rec.Image,
		Ext:       ".png",
	}, nil
}

// datePathFromTimestamp converts a "YYYY-MM-DD HH:MM:SS" timestamp into
// the slash-delimited "YYYY/MM/DD" archive path segment.
func datePathFromTimestamp(ts string) (string, error) {
	datePart, _, _ := strings.Cut(ts, " ")
	path := strings.ReplaceAll(datePart, "-", "/")
	if !datePathRe.MatchString(path) {
		return "", fmt.Errorf("timestamp does not start with YYYY-MM-DD")
	}
	return path, nil
}
