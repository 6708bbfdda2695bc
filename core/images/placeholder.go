// ABOUTME: Local placeholder rendering used when every image provider fails
// ABOUTME: Draws a flat card with the headline so articles always have an illustration

package images

import (
	"image"
	"image/color"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	textutil "okcrisis-api/pkg/utils/text"
)

var (
	placeholderBg     = color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	placeholderAccent = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	placeholderText   = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
)

// renderPlaceholder draws a branded card carrying the headline and
// writes it under the image directory.
func (s *Service) renderPlaceholder(title string) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, s.cfg.ArticleWidth, s.cfg.ArticleHeight))
	fillRect(img, img.Bounds(), placeholderBg)

	// Accent bar across the top.
	fillRect(img, image.Rect(0, 0, s.cfg.ArticleWidth, 12), placeholderAccent)

	lines := textutil.Wrap(title, 50)
	if len(lines) > 4 {
		lines = lines[:4]
	}

	lineHeight := basicfont.Face7x13.Metrics().Height.Ceil() + 8
	startY := s.cfg.ArticleHeight/2 - (len(lines)*lineHeight)/2

	for i, line := range lines {
		drawCenteredText(img, line, s.cfg.ArticleWidth/2, startY+i*lineHeight, placeholderText)
	}

	drawCenteredText(img, "OK CRISIS", s.cfg.ArticleWidth/2, s.cfg.ArticleHeight-40, placeholderAccent)

	path := filepath.Join(s.cfg.ImageDir, s.filename(title))
	if err := saveJPEG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawText renders a line with the built-in bitmap face at (x, y).
func drawText(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawCenteredText horizontally centers a line around cx.
func drawCenteredText(img *image.RGBA, text string, cx, y int, c color.RGBA) {
	d := font.Drawer{Face: basicfont.Face7x13}
	width := d.MeasureString(text).Ceil()
	drawText(img, text, cx-width/2, y, c)
}
