package evaluate

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
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
