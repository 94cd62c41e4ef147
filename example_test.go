package chaos_test

import (
	"fmt"
	"math/rand"

	"github.com/jbeda/geom"

	chaos "github.com/DuroCodes/chaos-game"
)

func ExampleOptimalRatio() {
	r, _ := chaos.OptimalRatio(3)
	fmt.Printf("triangle: %.2f\n", r)
	r, _ = chaos.OptimalRatio(6)
	fmt.Printf("hexagon:  %.4f\n", r)
	// Output:
	// triangle: 0.50
	// hexagon:  0.6667
}

func ExampleNewIterator() {
	poly, _ := chaos.NewPolygon(3, geom.Coord{}, 1)
	it, _ := chaos.NewIterator(poly, 0.5, geom.Coord{}, rand.New(rand.NewSource(1)))

	// The first jump from the origin lands halfway to the drawn vertex.
	p := it.Next()
	fmt.Println(p == poly.Vertex(it.LastIndex()).Times(0.5))
	// Output: true
}
