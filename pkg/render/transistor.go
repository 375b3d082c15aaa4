package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("transistor_npn", transistorNPNRenderer{})
}

// transistorNPNRenderer draws an NPN transistor: a base lead entering the
// left of the body circle, collector leaving the top, emitter leaving the
// bottom. The emitter arrowhead is not drawn.
type transistorNPNRenderer struct{}

const (
	transistorW = 40.0
	transistorH = 60.0
	transistorR = 18.0
)

func (transistorNPNRenderer) Ports() []string {
	return []string{"base", "collector", "emitter"}
}

func (transistorNPNRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	return []drawing.Primitive{
		drawing.Circle{Center: circuit.Position{}, Radius: transistorR, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -transistorW / 2, Y: 0}, To: circuit.Position{X: -8, Y: 0}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -8, Y: -10}, To: circuit.Position{X: -8, Y: 10}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -8, Y: -6}, To: circuit.Position{X: 10, Y: -16}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 10, Y: -16}, To: circuit.Position{X: 0, Y: -transistorH / 2}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: -8, Y: 6}, To: circuit.Position{X: 10, Y: 16}, Stroke: "black"},
		drawing.Line{From: circuit.Position{X: 10, Y: 16}, To: circuit.Position{X: 0, Y: transistorH / 2}, Stroke: "black"},
	}
}

func (transistorNPNRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	ports := transistorNPNRenderer{}.Ports()
	idx, err := findPortIndex(ports, spec)
	if err != nil {
		return circuit.Position{}, 0, err
	}
	switch idx {
	case 0: // base
		return circuit.Position{X: -transistorW / 2, Y: 0}, circuit.DirLeft, nil
	case 1: // collector
		return circuit.Position{X: 0, Y: -transistorH / 2}, circuit.DirUp, nil
	default: // emitter
		return circuit.Position{X: 0, Y: transistorH / 2}, circuit.DirDown, nil
	}
}

func (transistorNPNRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return transistorW, transistorH
}
