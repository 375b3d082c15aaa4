// Package render holds one Renderer per component type: its drawing
// primitives, its bounding box, and its port geometry in the component's
// local (pre-rotation) frame. Renderers register themselves at init time
// into a static, case-insensitive lookup table.
package render

import (
	"fmt"
	"strings"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

// PortSpec selects a port on a component, either by index or by symbolic
// name. Exactly one of the two should be meaningful; Index takes
// precedence when >= 0.
type PortSpec struct {
	Index int
	Name  string
}

// Renderer draws a single component type and reports its port geometry.
// All positions returned (drawing primitives and port offsets alike) are
// in the component's local frame: offsets from its own center, not yet
// translated by its Position and not yet rotated. pkg/geometry applies
// both uniformly when resolving a port to world coordinates.
type Renderer interface {
	// Draw returns the local-frame drawing primitives for one instance.
	Draw(c *circuit.Component) []drawing.Primitive

	// Ports lists the port names in canonical index order.
	Ports() []string

	// Port resolves a PortSpec to a local-frame position and canonical
	// egress direction.
	Port(c *circuit.Component, spec PortSpec) (circuit.Position, circuit.Direction, error)

	// BoundingBox returns the pre-rotation width and height of the
	// component's footprint, centered on its Position.
	BoundingBox(c *circuit.Component) (width, height float64)
}

var registry = make(map[string]Renderer)

// Register adds a renderer under a component type name. Type names are
// matched case-insensitively at lookup time. Panics on a duplicate
// registration.
func Register(componentType string, r Renderer) {
	key := normalizeType(componentType)
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("render: type %q already registered", componentType))
	}
	registry[key] = r
}

// Get looks up the renderer for a component type. ok is false for unknown
// types; callers fall back to a position-only anchor in that case.
func Get(componentType string) (r Renderer, ok bool) {
	r, ok = registry[normalizeType(componentType)]
	return r, ok
}

// List returns the registered component type names.
func List() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	return names
}

func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// normalizePortName maps the symbolic port aliases used by a few component
// types onto their canonical cardinal name, per the renderer table.
func normalizePortName(name string) string {
	switch strings.ToLower(name) {
	case "positive", "base":
		return "left"
	case "negative":
		return "right"
	case "collector":
		return "up"
	case "emitter":
		return "down"
	default:
		return strings.ToLower(name)
	}
}

// findPortIndex resolves a PortSpec against a renderer's port name list. A
// name is tried verbatim first, then through its cardinal alias (so
// "left" resolves a battery's "positive" port and vice versa is not
// needed since "positive" already matches verbatim).
func findPortIndex(ports []string, spec PortSpec) (int, error) {
	if spec.Index >= 0 && spec.Index < len(ports) {
		return spec.Index, nil
	}
	if spec.Name != "" {
		for i, name := range ports {
			if strings.EqualFold(name, spec.Name) {
				return i, nil
			}
		}
		alias := normalizePortName(spec.Name)
		for i, name := range ports {
			if strings.EqualFold(normalizePortName(name), alias) {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("render: no port matching %+v among %v", spec, ports)
}
