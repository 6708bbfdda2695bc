// ABOUTME: Comic strip rasterizer drawing three panels of stick figure dialogue
// ABOUTME: Pure local rendering so comics never depend on external image providers

package images

import (
	"image"
	"image/color"
	"path/filepath"

	"okcrisis-api/core/domain"
	textutil "okcrisis-api/pkg/utils/text"
)

var (
	comicBg     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	comicInk    = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	comicAccent = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
)

const (
	panelMargin    = 10
	dialogueChars  = 40
	dialogueLines  = 3
	figureHeadR    = 15
	figureBodyLen  = 30
	figureArmSpan  = 20
	figureLegSpan  = 15
	figureLegDrop  = 15
)

// RenderComicStrip draws a three panel strip for the comic and saves it
// under the comic directory. Empty string when the encode fails.
func (s *Service) RenderComicStrip(comic *domain.Comic) string {
	img := image.NewRGBA(image.Rect(0, 0, s.cfg.ComicWidth, s.cfg.ComicHeight))
	fillRect(img, img.Bounds(), comicBg)

	panelWidth := s.cfg.ComicWidth / domain.PanelCount

	for i, panel := range comic.Panels {
		x0 := i * panelWidth
		s.drawPanel(img, panel, i, x0, panelWidth)
	}

	path := filepath.Join(s.cfg.ComicDir, s.filename(comic.Title))
	if err := saveJPEG(path, img); err != nil {
		s.logError("Failed to save comic strip", comic.Title, err)
		return ""
	}

	s.logInfo("Comic strip saved", map[string]interface{}{"path": path})
	return path
}

// RenderComicPlaceholder draws the "coming soon" card used when
// dialogue generation fails but a comic slot was already promised.
func (s *Service) RenderComicPlaceholder(title string) string {
	img := image.NewRGBA(image.Rect(0, 0, s.cfg.ComicWidth, s.cfg.ComicHeight))
	fillRect(img, img.Bounds(), comicBg)
	strokeRect(img, image.Rect(panelMargin, panelMargin, s.cfg.ComicWidth-panelMargin, s.cfg.ComicHeight-panelMargin), comicInk)

	drawCenteredText(img, "COMIC COMING SOON", s.cfg.ComicWidth/2, s.cfg.ComicHeight/2-10, comicInk)
	for i, line := range capLines(textutil.Wrap(title, 60), 2) {
		drawCenteredText(img, line, s.cfg.ComicWidth/2, s.cfg.ComicHeight/2+20+i*20, comicAccent)
	}

	path := filepath.Join(s.cfg.ComicDir, s.filename(title))
	if err := saveJPEG(path, img); err != nil {
		s.logError("Failed to save comic placeholder", title, err)
		return ""
	}
	return path
}

// drawPanel renders one bordered panel: label, dialogue block, figures.
func (s *Service) drawPanel(img *image.RGBA, panel domain.Panel, index, x0, width int) {
	border := image.Rect(x0+panelMargin, panelMargin, x0+width-panelMargin, s.cfg.ComicHeight-panelMargin)
	strokeRect(img, border, comicInk)

	label := "PANEL " + string(rune('1'+index))
	drawText(img, label, x0+panelMargin+8, panelMargin+22, comicAccent)

	// Dialogue fills the upper half of the panel.
	textY := panelMargin + 44
	for _, line := range panel.Lines {
		drawText(img, line.Character+":", x0+panelMargin+8, textY, comicAccent)
		textY += 16

		wrapped := capLines(textutil.Wrap(line.Text, dialogueChars), dialogueLines)
		for _, w := range wrapped {
			drawText(img, w, x0+panelMargin+16, textY, comicInk)
			textY += 14
		}
		textY += 6
	}

	// One stick figure per speaking character, spread along the floor.
	speakers := uniqueSpeakers(panel.Lines)
	if len(speakers) == 0 {
		return
	}

	floorY := s.cfg.ComicHeight - panelMargin - 90
	step := (width - 2*panelMargin) / (len(speakers) + 1)
	for i := range speakers {
		cx := x0 + panelMargin + step*(i+1)
		drawStickFigure(img, cx, floorY)
	}
}

// drawStickFigure draws head, body, arms and legs anchored at the
// head's top center (cx, y).
func drawStickFigure(img *image.RGBA, cx, y int) {
	drawCircle(img, cx, y+figureHeadR, figureHeadR, comicInk)

	bodyTop := y + 2*figureHeadR
	bodyBottom := bodyTop + figureBodyLen
	drawLine(img, cx, bodyTop, cx, bodyBottom, comicInk)

	armY := bodyTop + 10
	drawLine(img, cx, armY, cx-figureArmSpan, armY+8, comicInk)
	drawLine(img, cx, armY, cx+figureArmSpan, armY+8, comicInk)

	drawLine(img, cx, bodyBottom, cx-figureLegSpan, bodyBottom+figureLegDrop, comicInk)
	drawLine(img, cx, bodyBottom, cx+figureLegSpan, bodyBottom+figureLegDrop, comicInk)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, c)
	drawLine(img, r.Min.X, r.Max.Y, r.Max.X, r.Max.Y, c)
	drawLine(img, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y, c)
	drawLine(img, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, c)
}

// drawLine plots a segment with the Bresenham walk.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawCircle plots an outline circle centered at (cx, cy).
func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	x, y := r, 0
	err := 1 - r
	for x >= y {
		img.SetRGBA(cx+x, cy+y, c)
		img.SetRGBA(cx-x, cy+y, c)
		img.SetRGBA(cx+x, cy-y, c)
		img.SetRGBA(cx-x, cy-y, c)
		img.SetRGBA(cx+y, cy+x, c)
		img.SetRGBA(cx-y, cy+x, c)
		img.SetRGBA(cx+y, cy-x, c)
		img.SetRGBA(cx-y, cy-x, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func uniqueSpeakers(lines []domain.DialogueLine) []string {
	seen := make(map[string]bool, len(lines))
	var out []string
	for _, l := range lines {
		if !seen[l.Character] {
			seen[l.Character] = true
			out = append(out, l.Character)
		}
	}
	return out
}

func capLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
