package render

import (
	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func init() {
	Register("junction", junctionRenderer{})
}

// junctionRenderer draws a plain connection point: a small filled dot with
// a single "center" port that coincides with the component's position.
type junctionRenderer struct{}

func (junctionRenderer) Ports() []string { return []string{"center"} }

func (junctionRenderer) Draw(c *circuit.Component) []drawing.Primitive {
	return []drawing.Primitive{
		drawing.Circle{Center: circuit.Position{}, Radius: 2, Fill: "black"},
	}
}

func (junctionRenderer) Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error) {
	if _, err := findPortIndex(junctionRenderer{}.Ports(), spec); err != nil {
		return circuit.Position{}, 0, err
	}
	return circuit.Position{}, circuit.DirRight, nil
}

func (junctionRenderer) BoundingBox(c *circuit.Component) (float64, float64) {
	return 4, 4
}
