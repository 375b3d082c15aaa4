package circuit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCircuitFromBytesValid(t *testing.T) {
	c, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  description: a minimal circuit
  components:
    - id: j1
      type: junction
      properties:
        position: {x: 1, y: 2}
    - id: j2
      type: junction
      properties:
        position: {x: 3, y: 4}
        rotation: 90
  connections:
    - source: {component_id: j1}
      target: {component_id: j2}
`))
	require.NoError(t, err)
	assert.Equal(t, "test", c.Name)
	require.Len(t, c.Components, 2)
	assert.Equal(t, Position{X: 1, Y: 2}, c.Components[0].Position)
	assert.Equal(t, 90.0, c.Components[1].Rotation)
	require.Len(t, c.Connections, 1)
	assert.False(t, c.Connections[0].Source.HasPort)
}

func TestLoadCircuitFromBytesAttributes(t *testing.T) {
	c, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  components:
    - id: r1
      type: resistor
      properties:
        position: {x: 0, y: 0}
        resistance: 220
        unit: ohm
`))
	require.NoError(t, err)
	require.Len(t, c.Components, 1)
	assert.Equal(t, 220, c.Components[0].Attributes["resistance"])
	assert.Equal(t, "ohm", c.Components[0].Attributes["unit"])
}

func TestLoadCircuitFromBytesPortSpecs(t *testing.T) {
	c, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  components:
    - id: r1
      type: resistor
      properties:
        position: {x: 0, y: 0}
    - id: r2
      type: resistor
      properties:
        position: {x: 50, y: 0}
  connections:
    - source: {component_id: r1, port_index: 1}
      target: {component_id: r2, port: left}
`))
	require.NoError(t, err)
	conn := c.Connections[0]
	assert.True(t, conn.Source.HasPort)
	assert.Equal(t, 1, conn.Source.PortIndex)
	assert.True(t, conn.Target.HasPort)
	assert.Equal(t, "left", conn.Target.PortName)
}

func TestLoadCircuitFromBytesMissingName(t *testing.T) {
	_, err := LoadCircuitFromBytes([]byte(`
circuit:
  components: []
`))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestLoadCircuitFromBytesMissingProperties(t *testing.T) {
	_, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  components:
    - id: j1
      type: junction
`))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestLoadCircuitFromBytesUnknownComponentReference(t *testing.T) {
	_, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  components:
    - id: j1
      type: junction
      properties:
        position: {x: 0, y: 0}
  connections:
    - source: {component_id: j1}
      target: {component_id: missing}
`))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestLoadCircuitFromBytesDuplicateID(t *testing.T) {
	_, err := LoadCircuitFromBytes([]byte(`
circuit:
  name: test
  components:
    - id: j1
      type: junction
      properties:
        position: {x: 0, y: 0}
    - id: j1
      type: junction
      properties:
        position: {x: 10, y: 0}
`))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestLoadCircuitFromBytesInvalidYAML(t *testing.T) {
	_, err := LoadCircuitFromBytes([]byte("circuit: [this is not a map"))
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestLoadCircuitMissingFile(t *testing.T) {
	_, err := LoadCircuit("/nonexistent/path/circuit.yaml")
	require.Error(t, err)
}
