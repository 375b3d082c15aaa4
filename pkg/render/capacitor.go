package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("capacitor", capacitorRenderer{})
}

// capacitorRenderer draws the parallel-plate symbol.
type capacitorRenderer struct{}

const (
	capacitorW = 30.0
	capacitorH = 20.0
)

func (capacitorRenderer) Ports() []string { return []string{"left", "right"} }

func (capacitorRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	half := capacitorW / 2
	return []drawing.Primitive{
		drawing.Line{From: circuit.Position{X: -2, Y: -10}, To: circuit.Position{X: -2, Y: 10}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 2, Y: -10}, To: circuit.Position{X: 2, Y: 10}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -half, Y: 0}, To: circuit.Position{X: -2, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 2, Y: 0}, To: circuit.Position{X: half, Y: 0}, Stroke: "black"},
	}
}

func (capacitorRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := capacitorRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	half := capacitorW / 2
	if idx == 0 {
		return circuit.Position{X: -half, Y: 0}, circuit.DirLeft, nil
	}
	return circuit.Position{X: half, Y: 0}, circuit.DirRight, nil
}

func (capacitorRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return capacitorW, capacitorH
}
