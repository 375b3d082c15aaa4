package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("coil", coilRenderer{})
}

// coilRenderer draws an inductor as a row of bumps approximated by a
// zig-zag polyline between the leads.
type coilRenderer struct{}

const (
	coilW = 50.0
	coilH = 10.0
)

func (coilRenderer) Ports() []string { return []string{"left", "right"} }

func (coilRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	half := coilW / 2
	bodyHalf := half - 5
	return []drawing.Primitive{
		drawing.Polyline{
			Points: []circuit.Position{
				{X: -bodyHalf, Y: 0},
				{X: -bodyHalf / 2, Y: -5},
				{X: 0, Y: 0},
				{X: bodyHalf / 2, Y: -5},
				{X: bodyHalf, Y: 0},
			},
			Stroke: "black",
		},
		drawing.Line{From: circuit.Position{X: -half, Y: 0}, To: circuit.Position{X: -bodyHalf, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: bodyHalf, Y: 0}, To: circuit.Position{X: half, Y: 0}, Stroke: "black"},
	}
}

func (coilRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := coilRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	half := coilW / 2
	if idx == 0 {
		return circuit.Position{X: -half, Y: 0}, circuit.DirLeft, nil
	}
	return circuit.Position{X: half, Y: 0}, circuit.DirRight, nil
}

func (coilRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return coilW, coilH
}
