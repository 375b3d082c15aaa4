package circuit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned (wrapped) when a circuit document is
// syntactically valid YAML but fails schema validation, or is not valid
// YAML at all.
var ErrInvalidDocument = errors.New("invalid circuit document")

// document mirrors the on-disk YAML shape: a single top-level "circuit" key.
type document struct {
	Circuit documentCircuit `yaml:"circuit"`
}

type documentCircuit struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Components  []documentComponent  `yaml:"components"`
	Connections []documentConnection `yaml:"connections"`
}

type documentComponent struct {
	ID         string              `yaml:"id"`
	Type       string              `yaml:"type"`
	Properties *documentProperties `yaml:"properties"`
}

// documentProperties carries everything a component needs beyond its id
// and type: its placement, and any type-specific attributes (e.g. a
// resistor's resistance value) folded in alongside position/rotation.
type documentProperties struct {
	Position   documentPoint  `yaml:"position"`
	Rotation   float64        `yaml:"rotation"`
	Attributes map[string]any `yaml:",inline"`
}

type documentPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type documentConnection struct {
	Source documentEndpoint `yaml:"source"`
	Target documentEndpoint `yaml:"target"`
}

// documentEndpoint accepts either a numeric port_index or a symbolic port
// name; a component_id with neither set anchors to the component's
// position.
type documentEndpoint struct {
	ComponentID string `yaml:"component_id"`
	Port        string `yaml:"port,omitempty"`
	PortIndex   *int   `yaml:"port_index,omitempty"`
}

// LoadCircuit reads and validates a circuit YAML file.
func LoadCircuit(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading circuit file: %w", err)
	}
	return LoadCircuitFromBytes(data)
}

// LoadCircuitFromBytes parses and validates a circuit document from a byte
// slice. Useful for testing and programmatic circuit generation.
func LoadCircuitFromBytes(data []byte) (*Circuit, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrInvalidDocument, err)
	}

	c := &Circuit{
		Name:        doc.Circuit.Name,
		Description: doc.Circuit.Description,
	}
	if c.Name == "" {
		return nil, fmt.Errorf("%w: circuit.name is required", ErrInvalidDocument)
	}

	ids := make(map[string]bool, len(doc.Circuit.Components))
	for _, dc := range doc.Circuit.Components {
		if dc.ID == "" {
			return nil, fmt.Errorf("%w: component missing id", ErrInvalidDocument)
		}
		if dc.Type == "" {
			return nil, fmt.Errorf("%w: component %q missing type", ErrInvalidDocument, dc.ID)
		}
		if dc.Properties == nil {
			return nil, fmt.Errorf("%w: component %q missing properties", ErrInvalidDocument, dc.ID)
		}
		if ids[dc.ID] {
			return nil, fmt.Errorf("%w: duplicate component id %q", ErrInvalidDocument, dc.ID)
		}
		ids[dc.ID] = true

		c.Components = append(c.Components, Component{
			ID:         dc.ID,
			Type:       dc.Type,
			Position:   Position{X: dc.Properties.Position.X, Y: dc.Properties.Position.Y},
			Rotation:   dc.Properties.Rotation,
			Attributes: dc.Properties.Attributes,
		})
	}

	for i, dconn := range doc.Circuit.Connections {
		src, err := resolveEndpoint(dconn.Source, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: connection %d source: %v", ErrInvalidDocument, i, err)
		}
		dst, err := resolveEndpoint(dconn.Target, ids)
		if err != nil {
			return nil, fmt.Errorf("%w: connection %d target: %v", ErrInvalidDocument, i, err)
		}
		c.Connections = append(c.Connections, Connection{Source: src, Target: dst})
	}

	return c, nil
}

func resolveEndpoint(d documentEndpoint, knownIDs map[string]bool) (Endpoint, error) {
	if d.ComponentID == "" {
		return Endpoint{}, errors.New("component_id is required")
	}
	if !knownIDs[d.ComponentID] {
		return Endpoint{}, fmt.Errorf("unknown component_id %q", d.ComponentID)
	}

	ep := Endpoint{ComponentID: d.ComponentID}
	switch {
	case d.PortIndex != nil:
		ep.HasPort = true
		ep.PortIndex = *d.PortIndex
	case d.Port != "":
		ep.HasPort = true
		ep.PortName = d.Port
		ep.PortIndex = -1
	default:
		ep.HasPort = false
	}
	return ep, nil
}
