// Package chaos implements the chaos game: given the vertices of a regular
// polygon and a jump ratio, successive points are plotted by moving a fixed
// fraction of the distance from the current point toward a randomly chosen
// vertex. For well known ratios (0.5 on a triangle) the points settle onto a
// fractal attractor such as the Sierpinski triangle.
//
// The package provides the polygon builder, the closed-form optimal jump
// ratio for a regular n-gon, and a pull-based point iterator with an injected
// random source, plus small rendering helpers (density plots, canvas output,
// palettes) used by the sketches in the subdirectories.
package chaos
