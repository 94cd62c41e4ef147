// Chaossim plays the chaos game on a regular polygon: a point repeatedly
// jumps a fraction of the distance toward a randomly chosen vertex, and the
// visited pixels accumulate into a fractal. Three point streams with slightly
// different ratio jitters feed the red, green and blue planes.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"strconv"

	chaos "github.com/DuroCodes/chaos-game"
	"github.com/jbeda/geom"
)

const margin = 10 // pixels between the polygon and the image edge

var (
	seedFlag   = flag.String("seed", "", "Hex value for the seed to use")
	sidesFlag  = flag.Int("n", 5, "Number of polygon vertices")
	ratioFlag  = flag.String("r", "optimal", "Jump ratio, or 'optimal' for the closed-form kissing ratio")
	sizeFlag   = flag.Int("s", 800, "Width/height of the output image in pixels")
	pointsFlag = flag.Int("points", 400000, "Number of points to plot per color plane")
	outFlag    = flag.String("o", "", "Output PNG filename (default: seed-stamped name)")
)

// Per-plane ratio jitter. Each plane runs its own stream with a slightly
// different perturbation, so the planes drift apart into colored ghosts of
// the same attractor.
var planeJitter = [3]float64{0.02, 0.04, 0.08}

func main() {
	flag.Parse()
	g, err := chaos.Init(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}

	ratio, err := parseRatio(*ratioFlag, *sidesFlag)
	if err != nil {
		fmt.Printf("Bad ratio %q: %v\n", *ratioFlag, err)
		return
	}

	size := float64(*sizeFlag)
	center := geom.Coord{X: size / 2, Y: size / 2}
	poly, err := chaos.NewPolygon(*sidesFlag, center, size/2-margin, chaos.WithPhase(-math.Pi/2))
	if err != nil {
		fmt.Printf("Bad polygon: %v\n", err)
		return
	}

	fmt.Printf("Chaos game: %d sides, ratio %.4f, seed %x\n", *sidesFlag, ratio, g.GetSeed())

	bounds := geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: size, Y: size}}
	plot, err := chaos.NewPlot(*sizeFlag, *sizeFlag, len(planeJitter), bounds)
	if err != nil {
		fmt.Printf("Bad plot: %v\n", err)
		return
	}

	rng := g.Rand()
	for plane := range planeJitter {
		start := geom.Coord{X: rng.Float64() * size, Y: rng.Float64() * size}
		it, err := chaos.NewIterator(poly, ratio, start, rng,
			chaos.WithSelection(chaos.SelectNonAdjacent),
			chaos.WithJitter(planeJitter[plane]))
		if err != nil {
			fmt.Printf("Bad iterator: %v\n", err)
			return
		}
		for i := 0; i < *pointsFlag; i++ {
			plot.Mark(plane, it.Next())
		}
	}

	img := plot.Render()
	if *outFlag == "" {
		if err := g.SafeWriteImage(img, "chaossim-"); err != nil {
			return
		}
		return
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fmt.Printf("Unable to create %s: %v\n", *outFlag, err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("Unable to encode %s: %v\n", *outFlag, err)
		return
	}
	fmt.Println("Saved to", *outFlag)
}

func parseRatio(s string, sides int) (float64, error) {
	if s == "optimal" {
		return chaos.OptimalRatio(sides)
	}
	return strconv.ParseFloat(s, 64)
}
