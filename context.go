package chaos

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is a thin abstraction over a vector canvas for sketches that want
// resolution-independent output (SVG or PDF) instead of a pixel plot.
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

// NewContext creates a canvas of width x height millimeters.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) Push() {
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	ctx.ctx.Pop()
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new
// independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, y)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, y)
}

// Point draws a 1 pixel rectangle at point
func (ctx *Context) Point(x, y float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(1, 1))
}

// Dot draws a filled circle of radius r centered at x,y.
func (ctx *Context) Dot(x, y, r float64) {
	ctx.ctx.DrawPath(x, y, canvas.Circle(r))
}

// Polygon adds the closed outline of p to the current path. Call Stroke (or
// Fill) afterwards.
func (ctx *Context) Polygon(p Polygon) {
	ctx.MoveTo(p.Vertex(0).X, p.Vertex(0).Y)
	for i := 1; i < p.Len(); i++ {
		ctx.LineTo(p.Vertex(i).X, p.Vertex(i).Y)
	}
	ctx.Close()
}

// FillRect draws a rectangle path with the current fill color.
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Fill fills the current path and resets it.
func (ctx *Context) Fill() {
	ctx.ctx.Fill()
}

// Close closes the current path
func (ctx *Context) Close() {
	ctx.ctx.Close()
}
