// Package interfaces defines the contracts used throughout the pipeline.
// These interfaces allow for dependency injection and make the core testable.
package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests to the
// external feed, generation and image provider APIs. The headers map may
// be nil when no extra headers (auth tokens etc.) are needed.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Post performs an HTTP POST request with a JSON body.
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses, allowing client
// implementations to provide their own response types.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller is responsible for
	// closing it when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string when not present. Header names are case-insensitive.
	Header(key string) string
}
