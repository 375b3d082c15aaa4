// Package drawing defines a device-independent stream of vector drawing
// commands. Renderers and the routing pipeline append to a Document;
// adapters such as pkg/svgexport turn it into a concrete output format.
package drawing

import "github.com/arrowcircuit/circuitry/pkg/circuit"

// Primitive is a single device-independent drawing command.
type Primitive interface {
	isPrimitive()
}

// Line is a single straight segment.
type Line struct {
	From, To circuit.Position
	Stroke   string
}

func (Line) isPrimitive() {}

// Polyline is a sequence of connected straight segments.
type Polyline struct {
	Points []circuit.Position
	Stroke string
}

func (Polyline) isPrimitive() {}

// Rect is an axis-aligned rectangle centered on Center, pre-rotation.
type Rect struct {
	Center circuit.Position
	Width  float64
	Height float64
	Stroke string
	Fill   string
}

func (Rect) isPrimitive() {}

// Circle is a filled or stroked circle.
type Circle struct {
	Center circuit.Position
	Radius float64
	Stroke string
	Fill   string
}

func (Circle) isPrimitive() {}

// Polygon is a closed sequence of points.
type Polygon struct {
	Points []circuit.Position
	Stroke string
	Fill   string
}

func (Polygon) isPrimitive() {}

// Text is a single label.
type Text struct {
	At       circuit.Position
	Content  string
	FontSize float64
}

func (Text) isPrimitive() {}

// Group wraps a set of primitives under a translate+rotate transform,
// mirroring how each component is drawn in its own local frame and then
// placed into the document.
type Group struct {
	Translate circuit.Position
	RotateDeg float64
	Children  []Primitive
}

func (Group) isPrimitive() {}

// Document is the full output of a render pass: the component groups, the
// routed wires, and any non-fatal routing failures collected along the way.
type Document struct {
	Width, Height   float64
	Primitives      []Primitive
	RoutingFailures []string
}

// Add appends a primitive to the document.
func (d *Document) Add(p Primitive) {
	d.Primitives = append(d.Primitives, p)
}
