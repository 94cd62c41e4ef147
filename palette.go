package chaos

import (
	"image"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DistinctColors returns k visually distinct colors by walking the HSV hue
// circle at fixed saturation and value. Deterministic, so sketches that
// color points by chosen vertex stay reproducible. Returns nil for k <= 0.
func DistinctColors(k int) []color.Color {
	if k <= 0 {
		return nil
	}
	out := make([]color.Color, k)
	for i := 0; i < k; i++ {
		out[i] = colorful.Hsv(360*float64(i)/float64(k), 0.85, 0.9)
	}
	return out
}

// PaletteFromImage decodes an image file and returns the set of colors it
// uses, for sketches that want to borrow a palette from a photograph.
func PaletteFromImage(fname string) (color.Palette, error) {
	reader, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	m, _, err := image.Decode(reader)
	if err != nil {
		return nil, err
	}

	bounds := m.Bounds()
	seen := make(map[color.Color]bool, 512)
	pal := make(color.Palette, 0, 512)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			col := m.At(x, y)
			if !seen[col] {
				seen[col] = true
				pal = append(pal, col)
			}
		}
	}
	return pal, nil
}
