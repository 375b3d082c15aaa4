// Package geometry applies component placement (translation and rotation)
// uniformly on top of the local-frame geometry renderers report. It is the
// single place rotation math happens, resolving the ambiguity in how the
// reference renderers mixed port-index and port-name resolution.
package geometry

import (
	"math"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/render"
)

// RotatePoint rotates p around center by angleDeg degrees, clockwise in a
// y-down world (positive angle turns right, matching screen coordinates).
func RotatePoint(p, center circuit.Position, angleDeg float64) circuit.Position {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return circuit.Position{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}

// directionCycle is the order a 90 degree step advances through, matching
// a clockwise turn in screen coordinates: right -> down -> left -> up.
var directionCycle = [...]circuit.Direction{
	circuit.DirRight, circuit.DirDown, circuit.DirLeft, circuit.DirUp,
}

// RotateDirection advances d by angleDeg, snapped to the nearest 90 degree
// step.
func RotateDirection(d circuit.Direction, angleDeg float64) circuit.Direction {
	steps := int(math.Round(angleDeg/90)) % 4
	if steps < 0 {
		steps += 4
	}
	start := indexOf(d)
	return directionCycle[(start+steps)%4]
}

func indexOf(d circuit.Direction) int {
	for i, dd := range directionCycle {
		if dd == d {
			return i
		}
	}
	return 0
}

// ResolvePort resolves a named or indexed port on a placed component to a
// world-space position and egress direction, applying the component's
// rotation around its own center.
func ResolvePort(r render.Renderer, c *circuit.Component, spec render.PortSpec) (circuit.Position, circuit.Direction, error) {
	local, dir, err := r.Port(c, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	worldPre := circuit.Position{X: c.Position.X + local.X, Y: c.Position.Y + local.Y}
	rotated := RotatePoint(worldPre, c.Position, c.Rotation)
	return rotated, RotateDirection(dir, c.Rotation), nil
}

// RotatedBoundingBox returns a renderer's bounding box for c, swapping
// width and height when the component's rotation normalizes to an odd
// multiple of 90 degrees.
func RotatedBoundingBox(r render.Renderer, c *circuit.Component) (width, height float64) {
	w, h := r.BoundingBox(c)
	steps := int(math.Round(c.Rotation/90)) % 4
	if steps < 0 {
		steps += 4
	}
	if steps%2 == 1 {
		return h, w
	}
	return w, h
}
