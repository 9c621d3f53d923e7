// Package httpx provides the shared HTTP client for outbound calls.
//
// One pooled client is reused by every integration (Telegram, translation
// fallback paths) so keep-alive connections are shared instead of each
// caller opening its own pool.
package httpx

import (
	"net/http"
	"time"
)

// sharedClient is the singleton HTTP client used throughout the application.
var sharedClient *http.Client

func init() {
	sharedClient = NewClient(30 * time.Second)
}

// Client returns the shared HTTP client instance.
func Client() *http.Client {
	return sharedClient
}

// NewClient creates an HTTP client with connection pooling.
//
// Connection pool configuration:
//   - MaxIdleConns: 100 idle connections across all hosts
//   - MaxIdleConnsPerHost: 10, so one host cannot monopolize the pool
//   - IdleConnTimeout: 90s before an idle connection is dropped
//   - Keep-alives enabled for connection reuse
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableKeepAlives:   false,
		},
	}
}
