// Pentaflake renders the chaos game on a pentagon at its optimal jump ratio,
// coloring each point by the vertex it jumped toward. Output is vector
// (SVG or PDF), so the result scales to plotter size.
package main

import (
	"flag"
	"fmt"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	chaos "github.com/DuroCodes/chaos-game"
	"github.com/jbeda/geom"
)

const (
	width     = 200.0 // mm
	height    = 200.0 // mm
	margin    = 10.0  // mm
	dotRadius = 0.12  // mm
	burnIn    = 20
)

var (
	seedFlag   = flag.String("seed", "", "Hex value for the seed to use")
	sidesFlag  = flag.Int("n", 5, "Number of polygon vertices")
	pointsFlag = flag.Int("points", 20000, "Number of points to draw")
	noRepeat   = flag.Bool("norepeat", false, "Never jump toward the same vertex twice in a row")
	extFlag    = flag.String("ext", ".svg", "Output format: .svg, .pdf or .png")
	palFlag    = flag.String("palette", "", "Image file to borrow per-vertex colors from")
)

// vertexColors picks one color per vertex, either from the hue circle or
// sampled out of an image the user supplied.
func vertexColors(n int) ([]color.Color, error) {
	if *palFlag == "" {
		return chaos.DistinctColors(n), nil
	}
	pal, err := chaos.PaletteFromImage(*palFlag)
	if err != nil {
		return nil, err
	}
	if len(pal) < n {
		return nil, fmt.Errorf("palette %q has only %d colors, need %d", *palFlag, len(pal), n)
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = pal[i*len(pal)/n]
	}
	return out, nil
}

func main() {
	flag.Parse()
	g, err := chaos.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
	}

	ctx := chaos.NewContext(width, height)
	ctx.SetFillColor(color.Gray{245})
	ctx.FillRect(0, 0, width, height)

	center := geom.Coord{X: width / 2, Y: height / 2}
	poly, err := chaos.NewPolygon(*sidesFlag, center, width/2-margin, chaos.WithPhase(math.Pi/2))
	if err != nil {
		fmt.Printf("Bad polygon: %v\n", err)
		return
	}
	ratio, err := chaos.OptimalRatio(*sidesFlag)
	if err != nil {
		fmt.Printf("Bad ratio: %v\n", err)
		return
	}
	fmt.Printf("Pentaflake: %d sides, ratio %.4f\n", *sidesFlag, ratio)

	ctx.SetStrokeColor(color.Gray{160})
	ctx.SetStrokeWidth(0.3)
	ctx.Polygon(poly)
	ctx.Stroke()

	opts := []chaos.IteratorOption{}
	if *noRepeat {
		opts = append(opts, chaos.WithSelection(chaos.SelectNoRepeat))
	}
	it, err := chaos.NewIterator(poly, ratio, center, g.Rand(), opts...)
	if err != nil {
		fmt.Printf("Bad iterator: %v\n", err)
		return
	}

	colors, err := vertexColors(poly.Len())
	if err != nil {
		fmt.Printf("Unable to build palette: %v\n", err)
		return
	}
	for i := 0; i < burnIn; i++ {
		it.Next()
	}
	for i := 0; i < *pointsFlag; i++ {
		p := it.Next()
		ctx.SetFillColor(colors[it.LastIndex()])
		ctx.Dot(p.X, p.Y, dotRadius)
	}

	if err := g.SafeWrite(ctx, "pentaflake-", *extFlag); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
}
