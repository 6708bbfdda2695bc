// ABOUTME: Accent color extraction via k-means over a saved illustration
// ABOUTME: Feeds the frontend theme; failures fall back to a neutral default

package images

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/EdlinOrg/prominentcolor"
)

const defaultAccentColor = "#4a4a4a"

// AccentColor extracts the dominant color of an image file as a hex
// string. It never returns an error; any failure yields the neutral
// default so article rendering is not blocked by color analysis.
func (s *Service) AccentColor(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return defaultAccentColor
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return defaultAccentColor
	}

	return dominantHex(img)
}

func dominantHex(img image.Image) (hex string) {
	// The k-means library can panic on degenerate inputs.
	defer func() {
		if r := recover(); r != nil {
			hex = defaultAccentColor
		}
	}()

	bounds := img.Bounds()
	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)
	if err != nil || len(colors) == 0 {
		// Retry without masks; mostly-white images trip the default masks.
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return defaultAccentColor
		}
	}

	c := colors[0].Color
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
