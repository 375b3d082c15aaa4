// Package routing discretizes the drawing surface into a grid of
// obstacle-tagged cells and finds orthogonal paths across it with A*.
package routing

import (
	"math"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
)

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Grid tracks hard obstacles (impassable), soft obstacles (passable at a
// cost, typically previously-routed wires), and port cells, which always
// override both.
type Grid struct {
	width, height int
	cellSize      float64
	hard          map[Cell]bool
	soft          map[Cell]bool
	port          map[Cell]bool
	softCost      float64
}

const defaultSoftCost = 50.0

// NewGrid builds an empty grid spanning width x height world units, cut
// into cellSize x cellSize cells. portCells are always passable regardless
// of any later Stamp or MarkSoftPath call.
func NewGrid(width, height, cellSize float64, portCells map[Cell]bool) *Grid {
	g := &Grid{
		width:    int(width / cellSize),
		height:   int(height / cellSize),
		cellSize: cellSize,
		hard:     make(map[Cell]bool),
		soft:     make(map[Cell]bool),
		port:     make(map[Cell]bool, len(portCells)),
		softCost: defaultSoftCost,
	}
	for c, ok := range portCells {
		if ok {
			g.port[c] = true
		}
	}
	return g
}

// WorldToCell converts a world position to its containing grid cell.
func (g *Grid) WorldToCell(p circuit.Position) Cell {
	return Cell{X: int(math.Floor(p.X / g.cellSize)), Y: int(math.Floor(p.Y / g.cellSize))}
}

// CellToWorld returns the world-space center of a cell.
func (g *Grid) CellToWorld(c Cell) circuit.Position {
	return circuit.Position{
		X: (float64(c.X) + 0.5) * g.cellSize,
		Y: (float64(c.Y) + 0.5) * g.cellSize,
	}
}

// InBounds reports whether c lies within the grid's cell range.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Stamp marks the footprint of a component (its world-space AABB, centered
// on bboxCenter) as hard, dilated by hardMargin cells, and a further ring
// of softMargin cells beyond that as soft. Port cells are never affected.
func (g *Grid) Stamp(bboxCenter circuit.Position, width, height float64, hardMargin, softMargin int) {
	core := g.aabbCells(bboxCenter, width, height)

	hardDilated := g.dilate(core, hardMargin)
	for _, c := range hardDilated {
		if !g.port[c] {
			g.hard[c] = true
		}
	}

	softDilated := g.dilate(hardDilated, softMargin)
	for _, c := range softDilated {
		if !g.port[c] && !g.hard[c] {
			g.soft[c] = true
		}
	}
}

func (g *Grid) aabbCells(center circuit.Position, width, height float64) []Cell {
	minC := g.WorldToCell(circuit.Position{X: center.X - width/2, Y: center.Y - height/2})
	maxC := g.WorldToCell(circuit.Position{X: center.X + width/2, Y: center.Y + height/2})
	var cells []Cell
	for x := minC.X; x <= maxC.X; x++ {
		for y := minC.Y; y <= maxC.Y; y++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// dilate returns the Moore-neighborhood expansion of cells by margin
// cells, including the originals.
func (g *Grid) dilate(cells []Cell, margin int) []Cell {
	if margin <= 0 {
		return cells
	}
	seen := make(map[Cell]bool)
	var out []Cell
	for _, c := range cells {
		for dx := -margin; dx <= margin; dx++ {
			for dy := -margin; dy <= margin; dy++ {
				n := Cell{X: c.X + dx, Y: c.Y + dy}
				if !seen[n] {
					seen[n] = true
					out = append(out, n)
				}
			}
		}
	}
	return out
}

// MarkSoftPath marks every cell in cells as soft, used to discourage (but
// not forbid) later routes from crossing an already-routed wire.
func (g *Grid) MarkSoftPath(cells []Cell) {
	for _, c := range cells {
		if !g.port[c] && !g.hard[c] {
			g.soft[c] = true
		}
	}
}

// IsHard reports whether c is an impassable obstacle. Port cells are never
// hard.
func (g *Grid) IsHard(c Cell) bool {
	if g.port[c] {
		return false
	}
	return g.hard[c]
}

// IsSoft reports whether c carries a soft-obstacle cost. Port cells are
// never soft.
func (g *Grid) IsSoft(c Cell) bool {
	if g.port[c] {
		return false
	}
	return g.soft[c]
}

// IsPort reports whether c is a registered port cell.
func (g *Grid) IsPort(c Cell) bool {
	return g.port[c]
}

// SetSoftCost overrides the per-cell cost added for crossing a soft
// obstacle. Used by the orchestrator to relax the grid across repeated
// routing attempts.
func (g *Grid) SetSoftCost(cost float64) {
	g.softCost = cost
}

// ClearAround removes hard and soft obstacle membership from the "chevron"
// neighborhood the original router clears around a path's start and end,
// so a component's own footprint never blocks its own leads.
func (g *Grid) ClearAround(center Cell) {
	for _, c := range chevron(center) {
		delete(g.hard, c)
		delete(g.soft, c)
	}
}

// chevron returns the asymmetric neighborhood cleared around a route's
// start or end node before searching: a band 5 cells wide and 3 cells tall
// centered on the node, plus a 3-cell-wide row two cells above and two
// cells below it, so a component's own leads are never blocked by its own
// footprint.
func chevron(center Cell) []Cell {
	var cells []Cell
	for _, dx := range []int{-1, 0, 1, -2, 2} {
		for _, dy := range []int{-1, 0, 1} {
			cells = append(cells, Cell{X: center.X + dx, Y: center.Y + dy})
		}
	}
	for _, dx := range []int{-1, 0, 1} {
		for _, dy := range []int{-2, 2} {
			cells = append(cells, Cell{X: center.X + dx, Y: center.Y + dy})
		}
	}
	return cells
}
