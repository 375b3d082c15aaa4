package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("battery", batteryRenderer{})
}

// batteryRenderer draws the long-plate/short-plate cell symbol, with
// "positive"/"negative" port names mapped onto the left/right sides.
type batteryRenderer struct{}

const (
	batteryW = 30.0
	batteryH = 20.0
)

func (batteryRenderer) Ports() []string { return []string{"positive", "negative"} }

func (batteryRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	half := batteryW / 2
	return []drawing.Primitive{
		drawing.Line{From: circuit.Position{X: -3, Y: -10}, To: circuit.Position{X: -3, Y: 10}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 3, Y: -5}, To: circuit.Position{X: 3, Y: 5}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -half, Y: 0}, To: circuit.Position{X: -3, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 3, Y: 0}, To: circuit.Position{X: half, Y: 0}, Stroke: "black"},
	}
}

func (batteryRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := batteryRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	half := batteryW / 2
	if idx == 0 { // positive -> left
		return circuit.Position{X: -half, Y: 0}, circuit.DirLeft, nil
	}
	return circuit.Position{X: half, Y: 0}, circuit.DirRight, nil // negative -> right
}

func (batteryRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return batteryW, batteryH
}
