package chaos

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jbeda/geom"
)

// markStep is how much one hit brightens a pixel's channel. Repeated hits
// accumulate until the channel saturates, so dense regions of the attractor
// glow while stray points stay dim.
const markStep = 4

// Plot accumulates chaos-game points into per-plane pixel hit counts and
// renders them as an image. Each plane maps to one RGB channel, so up to
// three point streams can be layered into a single picture; a single-plane
// plot renders as grayscale.
//
// The plot owns the mapping from real coordinates to pixels. Iterators stay
// in real coordinates and know nothing about the pixel grid.
type Plot struct {
	width, height int
	planes        int
	bounds        geom.Rect
	counts        [][]int
}

// NewPlot builds a plot of width×height pixels covering the given coordinate
// rectangle with the given number of planes (1 to 3). Returns ErrInvalidInput
// for non-positive dimensions, a degenerate rectangle, or a plane count
// outside [1, 3].
func NewPlot(width, height, planes int, bounds geom.Rect) (*Plot, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plot dimensions must be positive, got %dx%d: %w", width, height, ErrInvalidInput)
	}
	if planes < 1 || planes > 3 {
		return nil, fmt.Errorf("plot needs 1 to 3 planes, got %d: %w", planes, ErrInvalidInput)
	}
	if !(bounds.Max.X > bounds.Min.X) || !(bounds.Max.Y > bounds.Min.Y) {
		return nil, fmt.Errorf("plot bounds must span a non-empty area: %w", ErrInvalidInput)
	}

	counts := make([][]int, planes)
	for i := range counts {
		counts[i] = make([]int, width*height)
	}

	return &Plot{
		width:  width,
		height: height,
		planes: planes,
		bounds: bounds,
		counts: counts,
	}, nil
}

// PixelFor maps a real coordinate to a pixel position. The boolean is false
// when c falls outside the plot bounds.
func (pl *Plot) PixelFor(c geom.Coord) (int, int, bool) {
	if c.X < pl.bounds.Min.X || c.X > pl.bounds.Max.X ||
		c.Y < pl.bounds.Min.Y || c.Y > pl.bounds.Max.Y {
		return -1, -1, false
	}

	tx := (c.X - pl.bounds.Min.X) / (pl.bounds.Max.X - pl.bounds.Min.X)
	ty := (c.Y - pl.bounds.Min.Y) / (pl.bounds.Max.Y - pl.bounds.Min.Y)
	x := int(Lerp(0, float64(pl.width), tx))
	y := int(Lerp(0, float64(pl.height), ty))

	// The top edge of each range maps just past the last pixel.
	if x == pl.width {
		x--
	}
	if y == pl.height {
		y--
	}
	return x, y, true
}

// Mark records one hit for c on the given plane. Points outside the plot
// bounds are dropped silently; the iterator is infinite and divergent
// sequences are legal, so out-of-range points are routine, not errors.
func (pl *Plot) Mark(plane int, c geom.Coord) {
	if plane < 0 || plane >= pl.planes {
		return
	}
	x, y, ok := pl.PixelFor(c)
	if !ok {
		return
	}
	pl.counts[plane][y*pl.width+x]++
}

// Render converts the accumulated hit counts into an RGBA image on a black
// background. Plane 0, 1, 2 feed the red, green and blue channels; a
// single-plane plot feeds all three.
func (pl *Plot) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pl.width, pl.height))
	for y := 0; y < pl.height; y++ {
		for x := 0; x < pl.width; x++ {
			var rgb [3]uint8
			for p := 0; p < pl.planes; p++ {
				v := uint8(ClampInt(markStep*pl.counts[p][y*pl.width+x], 0, 255))
				if pl.planes == 1 {
					rgb[0], rgb[1], rgb[2] = v, v, v
				} else {
					rgb[p] = v
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}

// RenderGamma is like Render but scales each channel by the largest count
// seen on its plane with the given gamma correction, instead of the fixed
// per-hit step. Useful for long runs where every pixel would saturate.
func (pl *Plot) RenderGamma(gamma float64) *image.RGBA {
	scale := make([]float64, pl.planes)
	for p := 0; p < pl.planes; p++ {
		max := 0
		for _, v := range pl.counts[p] {
			if v > max {
				max = v
			}
		}
		if max > 0 {
			scale[p] = 255 / math.Pow(float64(max), 1/gamma)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, pl.width, pl.height))
	for y := 0; y < pl.height; y++ {
		for x := 0; x < pl.width; x++ {
			var rgb [3]uint8
			for p := 0; p < pl.planes; p++ {
				c := float64(pl.counts[p][y*pl.width+x])
				v := uint8(Clamp(math.Round(scale[p]*math.Pow(c, 1/gamma)), 0, 255))
				if pl.planes == 1 {
					rgb[0], rgb[1], rgb[2] = v, v, v
				} else {
					rgb[p] = v
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}
