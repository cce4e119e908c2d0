package util

import (
	"fmt"
	"net/http"
	"time"
)

// NewHTTPClient returns a client with an overall timeout that follows at
// most maxRedirects redirects. Headers of the first request carry over to
// redirected requests.
func NewHTTPClient(timeout time.Duration, maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
