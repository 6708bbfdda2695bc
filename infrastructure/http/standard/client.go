// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Provides the HTTP functionality consumed by the feed, generation and image boundaries

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"okcrisis-api/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "OKCrisis/1.0"
)

// Client implements the HTTPClient interface using the standard library.
type Client struct {
	client *http.Client
}

// NewClient creates a new HTTP client with the specified timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request with retry on 5xx responses.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	applyHeaders(req, headers)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// Post performs an HTTP POST request with a JSON body. Generative calls
// are not retried: a duplicate completion costs real quota.
func (c *Client) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	applyHeaders(req, headers)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

func applyHeaders(req *http.Request, headers map[string]string) {
	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
