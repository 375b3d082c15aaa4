package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("led", ledRenderer{})
}

// ledRenderer draws a diode triangle-and-bar symbol.
type ledRenderer struct{}

const (
	ledW = 40.0
	ledH = 20.0
)

func (ledRenderer) Ports() []string { return []string{"left", "right"} }

func (ledRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	half := ledW / 2
	return []drawing.Primitive{
		drawing.Polygon{
			Points: []circuit.Position{
				{X: -5, Y: -8},
				{X: -5, Y: 8},
				{X: 5, Y: 0},
			},
			Stroke: "black",
		},
		drawing.Line{From: circuit.Position{X: 5, Y: -8}, To: circuit.Position{X: 5, Y: 8}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -half, Y: 0}, To: circuit.Position{X: -5, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 5, Y: 0}, To: circuit.Position{X: half, Y: 0}, Stroke: "black"},
	}
}

func (ledRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := ledRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	half := ledW / 2
	if idx == 0 {
		return circuit.Position{X: -half, Y: 0}, circuit.DirLeft, nil
	}
	return circuit.Position{X: half, Y: 0}, circuit.DirRight, nil
}

func (ledRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return ledW, ledH
}
