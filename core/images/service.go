// ABOUTME: Image service produces article illustrations through a provider fallback chain
// ABOUTME: AI synthesis, two stock photo providers, a page scrape, then a placeholder that never fails

package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/nfnt/resize"

	coreerrors "okcrisis-api/core/errors"
	"okcrisis-api/core/interfaces"
	textutil "okcrisis-api/pkg/utils/text"
)

// Config holds provider keys, output directories and canvas sizes.
type Config struct {
	ReplicateToken string
	PexelsKey      string
	UnsplashKey    string

	ImageDir string
	ComicDir string

	ArticleWidth  int
	ArticleHeight int
	ComicWidth    int
	ComicHeight   int
}

// Service generates or locates an illustration for each article.
type Service struct {
	deps interfaces.Dependencies
	cfg  Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates the image service and its output directories.
func NewService(cfg Config, deps interfaces.Dependencies) (*Service, error) {
	if cfg.ArticleWidth <= 0 {
		cfg.ArticleWidth = 800
	}
	if cfg.ArticleHeight <= 0 {
		cfg.ArticleHeight = 600
	}
	if cfg.ComicWidth <= 0 {
		cfg.ComicWidth = 800
	}
	if cfg.ComicHeight <= 0 {
		cfg.ComicHeight = 400
	}

	for _, dir := range []string{cfg.ImageDir, cfg.ComicDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
		}
	}

	return &Service{
		deps: deps,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// GenerateArticleImage tries each provider in priority order and falls
// back to a locally rendered placeholder, which never fails. The
// returned path is empty only when even the placeholder could not be
// written to disk.
func (s *Service) GenerateArticleImage(ctx context.Context, title, content, category, pageLink string) string {
	if s.cfg.ReplicateToken != "" {
		if path := s.generateWithAI(ctx, title, content); path != "" {
			return path
		}
		s.logWarn("AI image generation failed, trying fallbacks", title)
	}

	terms := textutil.SearchTerms(title, category)

	if s.cfg.PexelsKey != "" {
		if path := s.searchPexels(ctx, terms, title); path != "" {
			return path
		}
		s.logWarn("Pexels lookup failed, trying next fallback", title)
	}

	if s.cfg.UnsplashKey != "" {
		if path := s.searchUnsplash(ctx, terms, title); path != "" {
			return path
		}
		s.logWarn("Unsplash lookup failed, trying page scrape", title)
	}

	if pageLink != "" {
		if path := s.scrapePageImage(ctx, pageLink, title); path != "" {
			return path
		}
	}

	path, err := s.renderPlaceholder(title)
	if err != nil {
		s.logError("Failed to render placeholder image", title, err)
		return ""
	}
	return path
}

// predictionRequest is the AI synthesis request body.
type predictionRequest struct {
	Input predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt  string `json:"prompt"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Outputs int    `json:"num_outputs"`
}

// predictionResponse is the AI synthesis response body.
type predictionResponse struct {
	Output []string `json:"output"`
}

// generateWithAI requests one synthesized image from the predictions API.
func (s *Service) generateWithAI(ctx context.Context, title, content string) string {
	prompt := imagePrompt(title, content)

	body, err := json.Marshal(predictionRequest{
		Input: predictionInput{
			Prompt:  prompt,
			Width:   s.cfg.ArticleWidth,
			Height:  s.cfg.ArticleHeight,
			Outputs: 1,
		},
	})
	if err != nil {
		return ""
	}

	headers := map[string]string{
		"Authorization": "Token " + s.cfg.ReplicateToken,
	}

	resp, err := s.deps.HTTPClient.Post(ctx, "https://api.replicate.com/v1/predictions", bytes.NewReader(body), headers)
	if err != nil {
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		return ""
	}

	respBody, err := io.ReadAll(resp.Body())
	if err != nil {
		return ""
	}

	var parsed predictionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Output) == 0 {
		return ""
	}

	return s.downloadAndSave(ctx, parsed.Output[0], title)
}

// pexelsResponse mirrors the Pexels search envelope.
type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// searchPexels tries up to three search terms against Pexels.
func (s *Service) searchPexels(ctx context.Context, terms []string, title string) string {
	headers := map[string]string{"Authorization": s.cfg.PexelsKey}

	for _, term := range capTerms(terms, 3) {
		endpoint := "https://api.pexels.com/v1/search?query=" + url.QueryEscape(term) + "&per_page=1&orientation=landscape"

		resp, err := s.deps.HTTPClient.Get(ctx, endpoint, headers)
		if err != nil {
			continue
		}

		var parsed pexelsResponse
		err = decodeResponse(resp, &parsed)
		if err != nil || len(parsed.Photos) == 0 {
			continue
		}

		if path := s.downloadAndSave(ctx, parsed.Photos[0].Src.Large, title); path != "" {
			return path
		}
	}

	return ""
}

// unsplashResponse mirrors the Unsplash search envelope.
type unsplashResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// searchUnsplash tries up to three search terms against Unsplash.
func (s *Service) searchUnsplash(ctx context.Context, terms []string, title string) string {
	headers := map[string]string{"Authorization": "Client-ID " + s.cfg.UnsplashKey}

	for _, term := range capTerms(terms, 3) {
		endpoint := "https://api.unsplash.com/search/photos?query=" + url.QueryEscape(term) + "&per_page=1&orientation=landscape"

		resp, err := s.deps.HTTPClient.Get(ctx, endpoint, headers)
		if err != nil {
			continue
		}

		var parsed unsplashResponse
		err = decodeResponse(resp, &parsed)
		if err != nil || len(parsed.Results) == 0 {
			continue
		}

		if path := s.downloadAndSave(ctx, parsed.Results[0].URLs.Regular, title); path != "" {
			return path
		}
	}

	return ""
}

// scrapePageImage pulls the first usable illustration off the original
// article page (og:image, then the first content image).
func (s *Service) scrapePageImage(ctx context.Context, pageLink, title string) string {
	resp, err := s.deps.HTTPClient.Get(ctx, pageLink, nil)
	if err != nil {
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return ""
	}

	src, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if !ok || src == "" {
		src, ok = doc.Find("article img, .content img").First().Attr("src")
		if !ok || src == "" {
			return ""
		}
	}

	if !strings.HasPrefix(src, "http") {
		base, err := url.Parse(pageLink)
		if err != nil {
			return ""
		}
		ref, err := url.Parse(src)
		if err != nil {
			return ""
		}
		src = base.ResolveReference(ref).String()
	}

	return s.downloadAndSave(ctx, src, title)
}

// downloadAndSave fetches an image, normalizes it to the article canvas
// and writes it under the image directory. Empty string on any failure.
func (s *Service) downloadAndSave(ctx context.Context, imageURL, title string) string {
	resp, err := s.deps.HTTPClient.Get(ctx, imageURL, nil)
	if err != nil {
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return ""
	}

	img, _, err := image.Decode(resp.Body())
	if err != nil {
		s.logError("Failed to decode downloaded image", title, err)
		return ""
	}

	width, height := uint(s.cfg.ArticleWidth), uint(s.cfg.ArticleHeight)
	bounds := img.Bounds()
	if bounds.Dx() != s.cfg.ArticleWidth || bounds.Dy() != s.cfg.ArticleHeight {
		img = resize.Resize(width, height, img, resize.Lanczos3)
	}

	path := filepath.Join(s.cfg.ImageDir, s.filename(title))
	if err := saveJPEG(path, img); err != nil {
		s.logError("Failed to save image", title, err)
		return ""
	}

	s.logInfo("Image saved", map[string]interface{}{"path": path})
	return path
}

// filename derives a safe file name from a title plus a random suffix.
func (s *Service) filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('_')
		}
		if b.Len() == 30 {
			break
		}
	}

	s.mu.Lock()
	suffix := 1000 + s.rng.Intn(9000)
	s.mu.Unlock()

	return fmt.Sprintf("%s_%d.jpg", b.String(), suffix)
}

// saveJPEG encodes an image to disk at quality 85.
func saveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
}

// decodeResponse reads and unmarshals a JSON API response, closing the body.
func decodeResponse(resp interfaces.Response, dst interface{}) error {
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return &coreerrors.ExternalAPIError{
			API:        "image provider",
			StatusCode: resp.StatusCode(),
			Message:    "non-200 response",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// imagePrompt builds the AI synthesis prompt from article content.
func imagePrompt(title, content string) string {
	if runes := []rune(content); len(runes) > 500 {
		content = string(runes[:500])
	}

	return fmt.Sprintf(`Create a satirical news photo illustration for this article:

Title: %s
Content: %s

Style requirements:
- Deadpan, serious news photography style
- Slightly absurd or surreal elements
- Professional lighting and composition
- Realistic but with humorous twist
- No text or watermarks
- Editorial photography aesthetic
- Subtle comedy in the imagery

Make it look like a legitimate news photo but with clearly absurd elements that match the satirical nature of the story.`, title, content)
}

func capTerms(terms []string, n int) []string {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg, title string) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, map[string]interface{}{"title": title})
	}
}

func (s *Service) logError(msg, title string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"title": title,
			"error": err.Error(),
		})
	}
}
