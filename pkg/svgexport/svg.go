// Package svgexport renders a drawing.Document to SVG using
// github.com/ajstarks/svgo, translating each device-independent
// primitive into its corresponding SVG element.
package svgexport

import (
	"bytes"
	"errors"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

// ErrUnsupportedFormat is returned when Format is asked for anything other
// than "svg".
var ErrUnsupportedFormat = errors.New("svgexport: unsupported format")

// Options configures the SVG output.
type Options struct {
	Format  string // only "svg" is supported today
	Profile string // "tiny" (default) or "full"; not used by Format, which writes no profile attribute
}

// DefaultOptions returns the canonical rendering options.
func DefaultOptions() Options {
	return Options{Format: "svg", Profile: "tiny"}
}

// Result is the rendered output plus its MIME type.
type Result struct {
	Content  []byte
	MIMEType string
}

// Format turns a drawing.Document into an SVG document.
func Format(doc *drawing.Document, opts Options) (Result, error) {
	if opts.Format == "" {
		opts.Format = "svg"
	}
	if opts.Format != "svg" {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(int(doc.Width), int(doc.Height))
	canvas.Rect(0, 0, int(doc.Width), int(doc.Height), "fill:white")

	for _, p := range doc.Primitives {
		drawPrimitive(canvas, p)
	}

	canvas.End()
	return Result{Content: buf.Bytes(), MIMEType: "image/svg+xml"}, nil
}

func drawPrimitive(canvas *svg.SVG, p drawing.Primitive) {
	switch v := p.(type) {
	case drawing.Line:
		stroke := strokeOr(v.Stroke, "black")
		canvas.Line(int(v.From.X), int(v.From.Y), int(v.To.X), int(v.To.Y),
			fmt.Sprintf("stroke:%s;stroke-width:1;fill:none", stroke))

	case drawing.Polyline:
		xs, ys := splitPositions(v.Points)
		stroke := strokeOr(v.Stroke, "black")
		canvas.Polyline(xs, ys, fmt.Sprintf("stroke:%s;stroke-width:1;fill:none", stroke))

	case drawing.Rect:
		x := int(v.Center.X - v.Width/2)
		y := int(v.Center.Y - v.Height/2)
		canvas.Rect(x, y, int(v.Width), int(v.Height), rectStyle(v))

	case drawing.Circle:
		canvas.Circle(int(v.Center.X), int(v.Center.Y), int(v.Radius), circleStyle(v))

	case drawing.Polygon:
		xs, ys := splitPositions(v.Points)
		canvas.Polygon(xs, ys, polygonStyle(v))

	case drawing.Text:
		canvas.Text(int(v.At.X), int(v.At.Y), v.Content, fmt.Sprintf("font-size:%.0fpx", v.FontSize))

	case drawing.Group:
		transform := fmt.Sprintf("translate(%g,%g) rotate(%g)", v.Translate.X, v.Translate.Y, v.RotateDeg)
		canvas.Gtransform(transform)
		for _, child := range v.Children {
			drawPrimitive(canvas, child)
		}
		canvas.Gend()
	}
}

func splitPositions(points []circuit.Position) (xs, ys []int) {
	xs = make([]int, len(points))
	ys = make([]int, len(points))
	for i, p := range points {
		xs[i] = int(p.X)
		ys[i] = int(p.Y)
	}
	return xs, ys
}

func strokeOr(stroke, fallback string) string {
	if stroke == "" {
		return fallback
	}
	return stroke
}

func rectStyle(r drawing.Rect) string {
	stroke := strokeOr(r.Stroke, "black")
	fill := r.Fill
	if fill == "" {
		fill = "none"
	}
	return fmt.Sprintf("stroke:%s;fill:%s", stroke, fill)
}

func circleStyle(c drawing.Circle) string {
	fill := c.Fill
	if fill == "" {
		fill = "none"
	}
	stroke := c.Stroke
	if stroke == "" && fill == "none" {
		stroke = "black"
	}
	return fmt.Sprintf("stroke:%s;fill:%s", stroke, fill)
}

func polygonStyle(p drawing.Polygon) string {
	stroke := strokeOr(p.Stroke, "black")
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	return fmt.Sprintf("stroke:%s;fill:%s", stroke, fill)
}
