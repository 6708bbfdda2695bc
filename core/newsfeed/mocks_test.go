package newsfeed

import (
	"context"
	"io"
	"strings"

	"okcrisis-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body, headers)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}
