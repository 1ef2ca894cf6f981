package wallpaper

import (
	"net/http"
	"time"

	"github.com/dixieflatline76/Terra/config"
)

// userAgentTransport wraps an http.RoundTripper and stamps every request
// with the Terra User-Agent header.
type userAgentTransport struct {
	http.RoundTripper
	userAgent string
}

// RoundTrip executes a single HTTP transaction, adding the User-Agent header.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", t.userAgent)
	return t.RoundTripper.RoundTrip(clonedReq)
}

// NewHTTPClient returns the HTTP client shared by the locator and the
// downloader: bounded timeout, redirects followed, identified requests.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			RoundTripper: http.DefaultTransport,
			userAgent:    config.UserAgent,
		},
	}
}
