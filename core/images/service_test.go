package images

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"io"
	"os"
	"strings"
	"testing"

	"okcrisis-api/core/domain"
	"okcrisis-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url, headers)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (interfaces.Response, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func newTestService(t *testing.T, client *mockHTTPClient) *Service {
	t.Helper()
	root := t.TempDir()
	svc, err := NewService(Config{
		ImageDir: root + "/images",
		ComicDir: root + "/comics",
	}, interfaces.Dependencies{
		HTTPClient: client,
		Logger:     nopLogger{},
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func decodeJPEG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestGenerateArticleImage_PlaceholderWithoutProviders(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			t.Errorf("unexpected request to %s with no providers configured", url)
			return nil, nil
		},
	})

	path := svc.GenerateArticleImage(context.Background(), "Committee Forms Committee", "body", "politics", "")

	if path == "" {
		t.Fatal("expected placeholder path, got empty")
	}

	img := decodeJPEG(t, path)
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 600 {
		t.Errorf("expected 800x600 placeholder, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestFilename_SanitizesTitle(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	name := svc.filename(`Committee/Forms: "Committee"!`)

	if strings.ContainsAny(name, `/\:"!`) {
		t.Errorf("filename %q carries unsafe characters", name)
	}
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("expected .jpg suffix, got %q", name)
	}
}

func TestFilename_Unique(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		seen[svc.filename("Same Title")] = true
	}
	if len(seen) < 2 {
		t.Error("expected the random suffix to vary across filenames")
	}
}

func TestRenderComicStrip_CanvasSize(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	comic, err := domain.NewComic("Comic: Test...", "Test", []domain.Panel{
		{Lines: []domain.DialogueLine{{Character: "Skip McGee", Text: "A committee!"}}},
		{Lines: []domain.DialogueLine{{Character: "Dr. Winklestein", Text: "Fascinating."}}},
		{Lines: []domain.DialogueLine{{Character: "Mildred Henderson", Text: "Naturally."}}},
	})
	if err != nil {
		t.Fatalf("NewComic failed: %v", err)
	}

	path := svc.RenderComicStrip(comic)
	if path == "" {
		t.Fatal("expected rendered strip path, got empty")
	}

	img := decodeJPEG(t, path)
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 400 {
		t.Errorf("expected 800x400 strip, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderComicPlaceholder(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	path := svc.RenderComicPlaceholder("Comic: Missing Dialogue...")
	if path == "" {
		t.Fatal("expected placeholder path, got empty")
	}

	img := decodeJPEG(t, path)
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 400 {
		t.Errorf("expected 800x400 placeholder, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestAccentColor_DefaultOnMissingFile(t *testing.T) {
	svc := newTestService(t, &mockHTTPClient{})

	if got := svc.AccentColor("/nonexistent/image.jpg"); got != defaultAccentColor {
		t.Errorf("expected default accent color, got %q", got)
	}
}

func TestDownloadAndSave_ResizesToCanvas(t *testing.T) {
	// Serve a small JPEG that must be normalized to 800x600
	small := image.NewRGBA(image.Rect(0, 0, 100, 80))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, small, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	svc := newTestService(t, &mockHTTPClient{
		getFunc: func(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: buf.Bytes()}, nil
		},
	})

	path := svc.downloadAndSave(context.Background(), "https://example.com/img.jpg", "Resize Test")
	if path == "" {
		t.Fatal("expected saved path, got empty")
	}

	img := decodeJPEG(t, path)
	bounds := img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 600 {
		t.Errorf("expected 800x600 after resize, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       []byte
}

func (m *mockResponse) StatusCode() int      { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser  { return io.NopCloser(bytes.NewReader(m.body)) }
func (m *mockResponse) Header(string) string { return "" }
