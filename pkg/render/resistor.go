package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("resistor", resistorRenderer{})
}

// resistorRenderer draws the resistor as a rectangular body with a lead on
// each side.
type resistorRenderer struct{}

const (
	resistorW = 30.0
	resistorH = 10.0
)

func (resistorRenderer) Ports() []string { return []string{"left", "right"} }

func (resistorRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	half := resistorW / 2
	return []drawing.Primitive{
		drawing.Rect{Center: circuit.Position{}, Width: resistorW, Height: resistorH, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -half, Y: 0}, To: circuit.Position{X: -half + 5, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: half - 5, Y: 0}, To: circuit.Position{X: half, Y: 0}, Stroke: "black"},
	}
}

func (resistorRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := resistorRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	half := resistorW / 2
	if idx == 0 {
		return circuit.Position{X: -half, Y: 0}, circuit.DirLeft, nil
	}
	return circuit.Position{X: half, Y: 0}, circuit.DirRight, nil
}

func (resistorRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return resistorW, resistorH
}
