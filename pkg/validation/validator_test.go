package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
)

func loadOrFail(t *testing.T, doc string) *circuit.Circuit {
	t.Helper()
	c, err := circuit.LoadCircuitFromBytes([]byte(doc))
	require.NoError(t, err)
	return c
}

func TestShortCircuitDetection(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: short
  components:
    - id: batt1
      type: battery
      properties:
        position: {x: 0, y: 0}
    - id: wire_junction
      type: junction
      properties:
        position: {x: 0, y: 50}
  connections:
    - source: {component_id: batt1, port: positive}
      target: {component_id: wire_junction}
    - source: {component_id: wire_junction}
      target: {component_id: batt1, port: negative}
`)
	diags := Validate(c)
	assert.NotEmpty(t, FilterByCode(diags, CodeShortCircuit), "expected a short circuit diagnostic")
}

func TestNoPowerLoopAndFloatingPort(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: open-loop
  components:
    - id: batt1
      type: battery
      properties:
        position: {x: 0, y: 0}
    - id: r1
      type: resistor
      properties:
        position: {x: 100, y: 0}
  connections:
    - source: {component_id: batt1, port: positive}
      target: {component_id: r1, port: left}
`)
	diags := Validate(c)
	assert.NotEmpty(t, FilterByCode(diags, CodeNoPowerLoop), "expected a no-power-loop diagnostic")

	floating := FilterByCode(diags, CodeFloatingPort)
	require.Len(t, floating, 2, "expected floating diagnostics for batt1's negative terminal and r1's right lead")
	var gotComponents []string
	for _, d := range floating {
		gotComponents = append(gotComponents, d.OffendingComponents[0])
	}
	assert.ElementsMatch(t, []string{"batt1", "r1"}, gotComponents)
}

func TestCompleteLoopHasNoLogicDiagnostics(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: complete
  components:
    - id: batt1
      type: battery
      properties:
        position: {x: 0, y: 0}
    - id: r1
      type: resistor
      properties:
        position: {x: 100, y: 0}
  connections:
    - source: {component_id: batt1, port: positive}
      target: {component_id: r1, port: left}
    - source: {component_id: r1, port: right}
      target: {component_id: batt1, port: negative}
`)
	diags := Validate(c)
	assert.False(t, HasErrors(diags), "expected a complete battery-resistor loop to have no LOGIC_* diagnostics, got %v", diags)
}

func TestFloatingPortIgnoresJunctions(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: lone-junction
  components:
    - id: j1
      type: junction
      properties:
        position: {x: 0, y: 0}
`)
	diags := Validate(c)
	assert.Empty(t, FilterByCode(diags, CodeFloatingPort), "a disconnected junction should never be reported as a floating port")
}

func TestComponentOverlapDetection(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: overlap
  components:
    - id: r1
      type: resistor
      properties:
        position: {x: 0, y: 0}
    - id: r2
      type: resistor
      properties:
        position: {x: 1, y: 0}
`)
	diags := Validate(c)
	assert.NotEmpty(t, FilterByCode(diags, CodeComponentOverlap))
}

func TestLayoutConventionFlagsInvertedLayout(t *testing.T) {
	c := loadOrFail(t, `
circuit:
  name: inverted
  components:
    - id: batt1
      type: battery
      properties:
        position: {x: 0, y: 200}
    - id: gnd1
      type: junction
      properties:
        position: {x: 0, y: 0}
`)
	diags := Validate(c)
	assert.NotEmpty(t, FilterByCode(diags, CodeConventionVCCHi))
}

func TestSummaryReportsNoIssuesWhenEmpty(t *testing.T) {
	assert.Contains(t, Summary(nil), "no issues")
}
