// Package circuitry orchestrates the full render pipeline: stamping
// component footprints onto a routing grid, emitting component symbols,
// and routing every connection as an obstacle-aware orthogonal wire. Each
// stage checks its context for cancellation before it runs.
package circuitry

import (
	"context"
	"fmt"
	"sort"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
	"github.com/arrowcircuit/circuitry/pkg/geometry"
	"github.com/arrowcircuit/circuitry/pkg/render"
	"github.com/arrowcircuit/circuitry/pkg/routing"
)

const (
	canvasWidth  = 500.0
	canvasHeight = 500.0
	cellSize     = 5.0
)

var softCostSchedule = []float64{5.0, 1.0, 0.0}

// resolvedEndpoint is an endpoint's world-space position and egress
// direction, resolved once up front and reused across the sort and route
// stages.
type resolvedEndpoint struct {
	pos    circuit.Position
	dir    circuit.Direction
	isPort bool
}

// Render runs the full pipeline over c and returns the drawing command
// stream. It never returns an error for routing failures — those are
// recorded as non-fatal entries in the returned document — but does return
// an error if ctx is canceled mid-pipeline.
func Render(ctx context.Context, c *circuit.Circuit) (*drawing.Document, error) {
	if err := checkDone(ctx); err != nil {
		return nil, err
	}

	resolved := resolveAllEndpoints(c)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}
	portCells := collectPortCells(c)
	grid := routing.NewGrid(canvasWidth, canvasHeight, cellSize, portCells)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}
	stampComponents(grid, c)

	doc := &drawing.Document{Width: canvasWidth, Height: canvasHeight}

	if err := checkDone(ctx); err != nil {
		return nil, err
	}
	emitComponents(doc, c)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}
	order := sortConnectionsByPriority(c, resolved)

	if err := checkDone(ctx); err != nil {
		return nil, err
	}
	routeConnections(doc, grid, c, resolved, order)

	return doc, nil
}

func checkDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func resolveEndpoint(c *circuit.Circuit, ep circuit.Endpoint) resolvedEndpoint {
	comp, ok := c.ComponentByID(ep.ComponentID)
	if !ok {
		return resolvedEndpoint{}
	}
	if !ep.HasPort {
		return resolvedEndpoint{pos: comp.Position, dir: circuit.DirRight, isPort: false}
	}

	r, ok := render.Get(comp.Type)
	if !ok {
		return resolvedEndpoint{pos: comp.Position, dir: circuit.DirRight, isPort: false}
	}

	spec := render.PortSpec{Index: -1}
	if ep.PortName != "" {
		spec.Name = ep.PortName
	} else {
		spec.Index = ep.PortIndex
	}

	pos, dir, err := geometry.ResolvePort(r, comp, spec)
	if err != nil {
		return resolvedEndpoint{pos: comp.Position, dir: circuit.DirRight, isPort: false}
	}
	return resolvedEndpoint{pos: pos, dir: dir, isPort: true}
}

// resolveAllEndpoints resolves both endpoints of every connection once,
// indexed by connection position in c.Connections.
func resolveAllEndpoints(c *circuit.Circuit) [][2]resolvedEndpoint {
	out := make([][2]resolvedEndpoint, len(c.Connections))
	for i, conn := range c.Connections {
		out[i] = [2]resolvedEndpoint{
			resolveEndpoint(c, conn.Source),
			resolveEndpoint(c, conn.Target),
		}
	}
	return out
}

// collectPortCells returns the grid cell of every port of every component
// with a registered renderer, whether or not a connection uses it.
func collectPortCells(c *circuit.Circuit) map[routing.Cell]bool {
	probe := routing.NewGrid(canvasWidth, canvasHeight, cellSize, nil)
	cells := make(map[routing.Cell]bool)
	for i := range c.Components {
		comp := &c.Components[i]
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		for idx := range r.Ports() {
			if pos, _, err := geometry.ResolvePort(r, comp, render.PortSpec{Index: idx}); err == nil {
				cells[probe.WorldToCell(pos)] = true
			}
		}
	}
	return cells
}

func stampComponents(grid *routing.Grid, c *circuit.Circuit) {
	for i := range c.Components {
		comp := &c.Components[i]
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		w, h := geometry.RotatedBoundingBox(r, comp)
		grid.Stamp(comp.Position, w, h, 0, 0)
	}
}

func emitComponents(doc *drawing.Document, c *circuit.Circuit) {
	for i := range c.Components {
		comp := &c.Components[i]
		r, ok := render.Get(comp.Type)
		if !ok {
			continue
		}
		doc.Add(drawing.Group{
			Translate: comp.Position,
			RotateDeg: comp.Rotation,
			Children:  r.Draw(comp),
		})
	}
}

func sortConnectionsByPriority(c *circuit.Circuit, resolved [][2]resolvedEndpoint) []int {
	order := make([]int, len(c.Connections))
	for i := range order {
		order[i] = i
	}
	dist := func(i int) float64 {
		a, b := resolved[i][0].pos, resolved[i][1].pos
		return abs64(a.X-b.X) + abs64(a.Y-b.Y)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dist(order[i]) > dist(order[j])
	})
	return order
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func routeConnections(doc *drawing.Document, grid *routing.Grid, c *circuit.Circuit, resolved [][2]resolvedEndpoint, order []int) {
	for _, idx := range order {
		src, dst := resolved[idx][0], resolved[idx][1]

		var path []circuit.Position
		found := false
		for _, sc := range softCostSchedule {
			grid.SetSoftCost(sc)
			req := routing.RouteRequest{
				Start:       src.pos,
				End:         dst.pos,
				StartEgress: src.dir,
				EndEgress:   dst.dir,
			}
			if p, ok := routing.FindPath(grid, req); ok {
				path, found = p, true
				break
			}
		}

		if !found {
			doc.Add(drawing.Line{From: src.pos, To: dst.pos, Stroke: "red"})
			doc.RoutingFailures = append(doc.RoutingFailures, fmt.Sprintf(
				"connection %d (%s -> %s): no route found",
				idx, c.Connections[idx].Source.ComponentID, c.Connections[idx].Target.ComponentID))
			continue
		}

		path[0] = src.pos
		path[len(path)-1] = dst.pos
		grid.MarkSoftPath(routing.PathCells(grid, path))
		doc.Add(drawing.Polyline{Points: path, Stroke: "black"})
	}
}
