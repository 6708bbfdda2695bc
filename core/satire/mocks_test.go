package satire

import (
	"context"

	"okcrisis-api/core/interfaces"
)

// mockTextGen is a mock implementation of the TextGenerator interface
type mockTextGen struct {
	completeFunc func(ctx context.Context, req interfaces.CompletionRequest) (string, error)
	enabled      bool
}

func (m *mockTextGen) Complete(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}
	return "", nil
}

func (m *mockTextGen) Enabled() bool {
	return m.enabled
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
