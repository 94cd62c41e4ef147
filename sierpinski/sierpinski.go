// Sierpinski draws the classic chaos-game triangle: jump halfway toward a
// random vertex, plot, repeat.
// Inspired by the construction in Barnsley's "Fractals Everywhere".
package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	chaos "github.com/DuroCodes/chaos-game"
	"github.com/jbeda/geom"
)

const (
	width  = 1024 // pixels
	height = 1024 // pixels
	margin = 20   // pixels
	points = 250000
	burnIn = 20 // steps discarded while the orbit settles onto the attractor
)

var seedFlag = flag.String("seed", "", "Hex value for the seed to use")

func main() {
	flag.Parse()
	g, err := chaos.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
	}

	ctx := gg.NewContext(width, height)
	ctx.SetColor(color.Gray{245})
	ctx.Clear()
	ctx.SetColor(color.Black)

	center := geom.Coord{X: width / 2, Y: height / 2}
	poly, err := chaos.NewPolygon(3, center, width/2-margin, chaos.WithPhase(gg.Radians(-90)))
	if err != nil {
		fmt.Printf("Bad polygon: %v\n", err)
		return
	}
	ratio, err := chaos.OptimalRatio(3) // 0.5 for a triangle
	if err != nil {
		fmt.Printf("Bad ratio: %v\n", err)
		return
	}

	it, err := chaos.NewIterator(poly, ratio, center, g.Rand())
	if err != nil {
		fmt.Printf("Bad iterator: %v\n", err)
		return
	}

	for i := 0; i < burnIn; i++ {
		it.Next()
	}
	for i := 0; i < points; i++ {
		p := it.Next()
		ctx.SetPixel(int(p.X), int(p.Y))
	}

	if err := g.SafeWriteFunc(ctx.SavePNG, "sierpinski-", ".png"); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
}
