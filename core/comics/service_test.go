package comics

import (
	"context"
	"errors"
	"testing"
	"time"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
	"okcrisis-api/pkg/ratelimit"
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

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func newTestService(gen *mockTextGen) *Service {
	return NewService(interfaces.Dependencies{
		Logger:  nopLogger{},
		TextGen: gen,
	}, ratelimit.New(time.Millisecond, 0))
}

func TestGenerateDialogue_ReturnsParsedPanels(t *testing.T) {
	gen := &mockTextGen{
		enabled: true,
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
			return threePanelDialogue, nil
		},
	}
	svc := newTestService(gen)

	panels := svc.GenerateDialogue(context.Background(), domain.RawStory{Title: "Test story"})

	if len(panels) != domain.PanelCount {
		t.Fatalf("expected %d panels, got %d", domain.PanelCount, len(panels))
	}
}

func TestGenerateDialogue_NilOnBackendError(t *testing.T) {
	gen := &mockTextGen{
		enabled: true,
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
			return "", errors.New("backend unavailable")
		},
	}
	svc := newTestService(gen)

	if panels := svc.GenerateDialogue(context.Background(), domain.RawStory{Title: "Test story"}); panels != nil {
		t.Errorf("expected nil on backend error, got %+v", panels)
	}
}

func TestGenerateDialogue_NilOnWrongPanelCount(t *testing.T) {
	gen := &mockTextGen{
		enabled: true,
		completeFunc: func(ctx context.Context, req interfaces.CompletionRequest) (string, error) {
			return "PANEL 1:\n[Skip McGee]: alone.", nil
		},
	}
	svc := newTestService(gen)

	if panels := svc.GenerateDialogue(context.Background(), domain.RawStory{Title: "Test story"}); panels != nil {
		t.Errorf("expected nil for wrong panel count, got %+v", panels)
	}
}

func TestGenerateDialogue_NilWhenDisabled(t *testing.T) {
	svc := newTestService(&mockTextGen{enabled: false})

	if panels := svc.GenerateDialogue(context.Background(), domain.RawStory{Title: "Test story"}); panels != nil {
		t.Errorf("expected nil when generation disabled, got %+v", panels)
	}
}
