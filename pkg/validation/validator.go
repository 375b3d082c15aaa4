// Package validation inspects a parsed circuit for drawing-level and
// logic-level defects: overlapping footprints, ports nothing connects to,
// short circuits, missing power loops, and layout-convention violations.
// Logic-level checks build a port-level connectivity graph and reach it
// with two BFS passes, one excluding load edges and one including them.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/geometry"
	"github.com/arrowcircuit/circuitry/pkg/render"
)

// ErrorCode is one of the closed set of diagnostic codes this validator
// can report.
type ErrorCode string

const (
	CodeComponentOverlap ErrorCode = "VISUAL_COMPONENT_OVERLAP"
	CodeMinimumSpacing   ErrorCode = "VISUAL_MINIMUM_SPACING"
	CodeConventionVCCHi  ErrorCode = "VISUAL_CONVENTION_VCC_HIGH"
	CodeFloatingPort     ErrorCode = "LOGIC_FLOATING_PORT"
	CodeShortCircuit     ErrorCode = "LOGIC_SHORT_CIRCUIT"
	CodeNoPowerLoop      ErrorCode = "LOGIC_NO_POWER_LOOP"
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Code                ErrorCode
	Message             string
	OffendingComponents []string
}

const minimumSpacingMargin = 10.0

// loadTypes are component types that count as a load when walking the
// power graph; a path reaching the negative terminal without crossing one
// of these is a short circuit.
var loadTypes = map[string]bool{
	"resistor":       true,
	"led":            true,
	"coil":           true,
	"transistor_npn": true,
}

// Validate runs every check against c and returns its findings in a fixed
// order: overlap, spacing, floating ports, then for each battery in turn
// its short-circuit or missing-power-loop finding, then layout convention.
func Validate(c *circuit.Circuit) []Diagnostic {
	var diags []Diagnostic
	diags = append(diags, checkOverlaps(c)...)
	diags = append(diags, checkMinimumSpacing(c)...)
	diags = append(diags, checkFloatingPorts(c)...)
	diags = append(diags, checkPowerGraph(c)...)
	diags = append(diags, checkLayoutConvention(c)...)
	return diags
}

type box struct {
	minX, minY, maxX, maxY float64
}

func boundingBoxOf(c *circuit.Component) (box, bool) {
	r, ok := render.Get(c.Type)
	if !ok {
		return box{}, false
	}
	w, h := geometry.RotatedBoundingBox(r, c)
	return box{
		minX: c.Position.X - w/2,
		minY: c.Position.Y - h/2,
		maxX: c.Position.X + w/2,
		maxY: c.Position.Y + h/2,
	}, true
}

func (b box) inflate(margin float64) box {
	return box{b.minX - margin, b.minY - margin, b.maxX + margin, b.maxY + margin}
}

func (b box) overlaps(o box) bool {
	return b.minX < o.maxX && b.maxX > o.minX && b.minY < o.maxY && b.maxY > o.minY
}

func checkOverlaps(c *circuit.Circuit) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i < len(c.Components); i++ {
		bi, ok := boundingBoxOf(&c.Components[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(c.Components); j++ {
			bj, ok := boundingBoxOf(&c.Components[j])
			if !ok {
				continue
			}
			if bi.overlaps(bj) {
				diags = append(diags, Diagnostic{
					Code:                CodeComponentOverlap,
					Message:             fmt.Sprintf("components %q and %q overlap", c.Components[i].ID, c.Components[j].ID),
					OffendingComponents: []string{c.Components[i].ID, c.Components[j].ID},
				})
			}
		}
	}
	return diags
}

func checkMinimumSpacing(c *circuit.Circuit) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i < len(c.Components); i++ {
		bi, ok := boundingBoxOf(&c.Components[i])
		if !ok {
			continue
		}
		inflated := bi.inflate(minimumSpacingMargin)
		for j := 0; j < len(c.Components); j++ {
			if i == j {
				continue
			}
			bj, ok := boundingBoxOf(&c.Components[j])
			if !ok {
				continue
			}
			if inflated.overlaps(bj) && !bi.overlaps(bj) {
				diags = append(diags, Diagnostic{
					Code:                CodeMinimumSpacing,
					Message:             fmt.Sprintf("components %q and %q are closer than the minimum spacing", c.Components[i].ID, c.Components[j].ID),
					OffendingComponents: []string{c.Components[i].ID, c.Components[j].ID},
				})
			}
		}
	}
	return diags
}

// portNode identifies a single port in the power/connectivity graph.
type portNode struct {
	componentID string
	portIndex   int
}

func (n portNode) key() string {
	return n.componentID + "/" + strconv.Itoa(n.portIndex)
}

// edge is a link in the power graph, tagged with whether traversing it
// passes through a load.
type edge struct {
	to     portNode
	isLoad bool
}

type powerGraph struct {
	adjacency map[string][]edge
	ports     map[string]portNode
}

func buildPowerGraph(c *circuit.Circuit) *powerGraph {
	g := &powerGraph{adjacency: make(map[string][]edge), ports: make(map[string]portNode)}

	addEdge := func(a, b portNode, isLoad bool) {
		g.ports[a.key()] = a
		g.ports[b.key()] = b
		g.adjacency[a.key()] = append(g.adjacency[a.key()], edge{to: b, isLoad: isLoad})
		g.adjacency[b.key()] = append(g.adjacency[b.key()], edge{to: a, isLoad: isLoad})
	}

	for _, conn := range c.Connections {
		srcNode, srcOK := resolveConnectivityNode(c, conn.Source)
		dstNode, dstOK := resolveConnectivityNode(c, conn.Target)
		if srcOK && dstOK {
			addEdge(srcNode, dstNode, false)
		}
	}

	for i := range c.Components {
		comp := &c.Components[i]
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		ports := r.Ports()
		switch strings.ToLower(comp.Type) {
		case "resistor", "led", "capacitor", "coil":
			if len(ports) == 2 {
				addEdge(portNode{comp.ID, 0}, portNode{comp.ID, 1}, loadTypes[strings.ToLower(comp.Type)])
			}
		case "transistor_npn":
			collector, emitter := -1, -1
			for idx, name := range ports {
				switch name {
				case "collector":
					collector = idx
				case "emitter":
					emitter = idx
				}
			}
			if collector >= 0 && emitter >= 0 {
				addEdge(portNode{comp.ID, collector}, portNode{comp.ID, emitter}, true)
			}
		}
	}

	return g
}

// resolveConnectivityNode maps a connection endpoint onto a portNode for
// graph-building purposes. A portless endpoint is treated as port index 0,
// matching how the loader anchors a bare component_id.
func resolveConnectivityNode(c *circuit.Circuit, ep circuit.Endpoint) (portNode, bool) {
	comp, ok := c.ComponentByID(ep.ComponentID)
	if !ok {
		return portNode{}, false
	}
	if !ep.HasPort {
		return portNode{comp.ID, 0}, true
	}
	r, ok := render.Get(comp.Type)
	if !ok {
		return portNode{}, false
	}
	spec := render.PortSpec{Index: -1}
	if ep.PortName != "" {
		spec.Name = ep.PortName
	} else {
		spec.Index = ep.PortIndex
	}
	ports := r.Ports()
	idx, err := findPortIndexForValidation(ports, spec)
	if err != nil {
		// Fall back to the renderer's own resolution, which also accepts
		// cardinal aliases, and find the port it picks by its position.
		want, _, perr := r.Port(comp, spec)
		if perr != nil {
			return portNode{}, false
		}
		for i := range ports {
			if p, _, _ := r.Port(comp, render.PortSpec{Index: i}); p == want {
				return portNode{comp.ID, i}, true
			}
		}
		return portNode{}, false
	}
	return portNode{comp.ID, idx}, true
}

func findPortIndexForValidation(ports []string, spec render.PortSpec) (int, error) {
	if spec.Index >= 0 && spec.Index < len(ports) {
		return spec.Index, nil
	}
	for i, name := range ports {
		if strings.EqualFold(name, spec.Name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no matching port")
}

// checkFloatingPorts flags any port of any non-junction component that no
// connection names, directly or via a bare component_id anchored to port 0.
// This deliberately ignores buildPowerGraph's synthetic intra-component
// edges: those model current flow for the short/power-loop checks, and
// would otherwise make a component's unconnected lead look "connected"
// through its own other lead.
func checkFloatingPorts(c *circuit.Circuit) []Diagnostic {
	connected := make(map[string]bool)
	for _, conn := range c.Connections {
		if node, ok := resolveConnectivityNode(c, conn.Source); ok {
			connected[node.key()] = true
		}
		if node, ok := resolveConnectivityNode(c, conn.Target); ok {
			connected[node.key()] = true
		}
	}

	var diags []Diagnostic
	for i := range c.Components {
		comp := &c.Components[i]
		if strings.ToLower(comp.Type) == "junction" {
			continue
		}
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		for idx, name := range r.Ports() {
			node := portNode{comp.ID, idx}
			if !connected[node.key()] {
				diags = append(diags, Diagnostic{
					Code:                CodeFloatingPort,
					Message:             fmt.Sprintf("port %q of component %q has no connection", name, comp.ID),
					OffendingComponents: []string{comp.ID},
				})
			}
		}
	}
	return diags
}

func checkPowerGraph(c *circuit.Circuit) []Diagnostic {
	g := buildPowerGraph(c)
	var diags []Diagnostic

	for i := range c.Components {
		comp := &c.Components[i]
		if strings.ToLower(comp.Type) != "battery" {
			continue
		}
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		ports := r.Ports()
		posIdx, negIdx := -1, -1
		for idx, name := range ports {
			switch name {
			case "positive":
				posIdx = idx
			case "negative":
				negIdx = idx
			}
		}
		if posIdx < 0 || negIdx < 0 {
			continue
		}
		pos := portNode{comp.ID, posIdx}
		neg := portNode{comp.ID, negIdx}

		if reachable(g, pos, neg, false) {
			diags = append(diags, Diagnostic{
				Code:                CodeShortCircuit,
				Message:             fmt.Sprintf("battery %q has a path from positive to negative with no load", comp.ID),
				OffendingComponents: []string{comp.ID},
			})
			continue
		}
		if !reachable(g, pos, neg, true) {
			diags = append(diags, Diagnostic{
				Code:                CodeNoPowerLoop,
				Message:             fmt.Sprintf("battery %q has no complete circuit back to its negative terminal", comp.ID),
				OffendingComponents: []string{comp.ID},
			})
		}
	}
	return diags
}

// reachable runs a BFS from start to end. When allowLoadEdges is false,
// edges tagged isLoad are skipped, so a successful search proves a short:
// a return path that never passes through a load.
func reachable(g *powerGraph, start, end portNode, allowLoadEdges bool) bool {
	visited := map[string]bool{start.key(): true}
	queue := []portNode{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return true
		}
		for _, e := range g.adjacency[cur.key()] {
			if e.isLoad && !allowLoadEdges {
				continue
			}
			if !visited[e.to.key()] {
				visited[e.to.key()] = true
				queue = append(queue, e.to)
			}
		}
	}
	return false
}

func checkLayoutConvention(c *circuit.Circuit) []Diagnostic {
	var batteryY, groundY []float64
	for _, comp := range c.Components {
		switch {
		case strings.ToLower(comp.Type) == "battery":
			batteryY = append(batteryY, comp.Position.Y)
		case strings.Contains(strings.ToLower(comp.ID), "gnd"):
			groundY = append(groundY, comp.Position.Y)
		}
	}
	if len(batteryY) == 0 || len(groundY) == 0 {
		return nil
	}
	if mean(batteryY) >= mean(groundY) {
		return []Diagnostic{{
			Code:    CodeConventionVCCHi,
			Message: "battery components should sit above ground junctions in the layout",
		}}
	}
	return nil
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
