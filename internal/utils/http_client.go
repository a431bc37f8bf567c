package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultClientTimeout is applied when the caller passes a zero timeout.
const defaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around resty.Client exposing all of its methods
// directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTP client for baseURL that sends
// and accepts JSON.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
