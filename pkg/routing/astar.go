package routing

import (
	"container/heap"
	"math"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
)

// RouteRequest describes a single point-to-point routing attempt.
type RouteRequest struct {
	Start, End             circuit.Position
	StartEgress, EndEgress circuit.Direction
}

const (
	costBase          = 1.0
	costHardAdjacency = 1000.0
	costWrongEgress   = 500.0
	costTurn          = 100.0
	costTurnNearEnd   = 1000.0
	costOffAxisMax    = 20.0
	costProximityK    = 20.0

	turnEscalationRadius = 2
	nearEndRadius        = 3
	proximityScanRadius  = 3
)

var directionOffsets = map[circuit.Direction]Cell{
	circuit.DirRight: {X: 1, Y: 0},
	circuit.DirDown:  {X: 0, Y: 1},
	circuit.DirLeft:  {X: -1, Y: 0},
	circuit.DirUp:    {X: 0, Y: -1},
}

// neighborOrder fixes the order neighbours are expanded in, so ties in the
// open set break the same way on every run.
var neighborOrder = [...]circuit.Direction{
	circuit.DirRight, circuit.DirDown, circuit.DirLeft, circuit.DirUp,
}

// FindPath searches the grid for an orthogonal route from req.Start to
// req.End. ok is false when no route exists; the returned slice is the
// smoothed sequence of world-space corner points on success.
func FindPath(g *Grid, req RouteRequest) (path []circuit.Position, ok bool) {
	start := g.WorldToCell(req.Start)
	end := g.WorldToCell(req.End)

	g.ClearAround(start)
	g.ClearAround(end)

	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, false
	}
	if start == end {
		return []circuit.Position{req.Start, req.End}, true
	}

	open := &priorityQueue{}
	heap.Init(open)
	heap.Push(open, pqItem{cell: start, f: heuristic(start, end)})

	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]float64{start: 0}
	dirInto := make(map[Cell]circuit.Direction)
	closed := make(map[Cell]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(pqItem).cell
		if closed[cur] {
			continue
		}
		if cur == end {
			return smooth(g, reconstruct(cameFrom, start, end)), true
		}
		closed[cur] = true

		for _, dir := range neighborOrder {
			off := directionOffsets[dir]
			next := Cell{X: cur.X + off.X, Y: cur.Y + off.Y}
			if !g.InBounds(next) || closed[next] || g.IsHard(next) {
				continue
			}

			isStart := cur == start

			var prevDir circuit.Direction
			hasPrevDir := false
			if d, ok := dirInto[cur]; ok {
				prevDir, hasPrevDir = d, true
			}

			step := cellCost(g, cur, next, dir, isStart, hasPrevDir, prevDir, req.StartEgress, req.EndEgress, end)
			tentative := gScore[cur] + step
			if existing, seen := gScore[next]; !seen || tentative < existing {
				gScore[next] = tentative
				cameFrom[next] = cur
				dirInto[next] = dir
				heap.Push(open, pqItem{cell: next, f: tentative + heuristic(next, end)})
			}
		}
	}

	return nil, false
}

func cellCost(g *Grid, cur, next Cell, moveDir circuit.Direction, isStart, hasPrevDir bool, prevDir, startEgress, endEgress circuit.Direction, end Cell) float64 {
	cost := costBase

	if hardAdjacent(g, next) {
		cost += costHardAdjacency
	}

	if isStart && moveDir != startEgress {
		cost += costWrongEgress
	}
	if isNearEnd(cur, end, nearEndRadius) && moveDir != endEgress {
		cost += costWrongEgress
	}

	if hasPrevDir && moveDir != prevDir {
		if isNearEnd(cur, end, turnEscalationRadius) {
			cost += costTurnNearEnd
		} else {
			cost += costTurn
		}
	}

	if g.IsSoft(next) {
		cost += g.softCost
	}

	cost += offAxisBias(cur, end, moveDir)
	cost += proximityPenalty(g, next)

	return cost
}

func hardAdjacent(g *Grid, c Cell) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsHard(Cell{X: c.X + dx, Y: c.Y + dy}) {
				return true
			}
		}
	}
	return false
}

func offAxisBias(cur, end Cell, moveDir circuit.Direction) float64 {
	totalDx := float64(end.X - cur.X)
	totalDy := float64(end.Y - cur.Y)
	absDx, absDy := math.Abs(totalDx), math.Abs(totalDy)
	if absDx == 0 && absDy == 0 {
		return 0
	}

	horizontalDominant := absDx >= absDy
	maxAxis := math.Max(absDx, absDy)
	minAxis := math.Min(absDx, absDy)
	ratio := 0.0
	if maxAxis > 0 {
		ratio = minAxis / maxAxis
	}

	movingHorizontally := moveDir == circuit.DirLeft || moveDir == circuit.DirRight
	offAxis := movingHorizontally != horizontalDominant
	if !offAxis {
		return 0
	}
	return costOffAxisMax * (1 - ratio)
}

func proximityPenalty(g *Grid, center Cell) float64 {
	total := 0.0
	for dx := -proximityScanRadius; dx <= proximityScanRadius; dx++ {
		for dy := -proximityScanRadius; dy <= proximityScanRadius; dy++ {
			dist := abs(dx) + abs(dy)
			if dist != 2 && dist != 3 {
				continue
			}
			if g.IsHard(Cell{X: center.X + dx, Y: center.Y + dy}) {
				total += costProximityK / float64(dist*dist)
			}
		}
	}
	return total
}

func isNearEnd(c, end Cell, radius int) bool {
	return heuristic(c, end) <= float64(radius)
}

func heuristic(a, b Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func reconstruct(cameFrom map[Cell]Cell, start, end Cell) []Cell {
	cells := []Cell{end}
	cur := end
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cells = append(cells, prev)
		cur = prev
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// smooth keeps only the path endpoints and the corners where the direction
// of travel changes, collapsing straight runs into a single segment.
func smooth(g *Grid, cells []Cell) []circuit.Position {
	if len(cells) == 0 {
		return nil
	}
	points := make([]circuit.Position, 0, len(cells))
	toWorld := g.CellToWorld
	points = append(points, toWorld(cells[0]))
	for i := 1; i < len(cells)-1; i++ {
		prevDx, prevDy := cells[i].X-cells[i-1].X, cells[i].Y-cells[i-1].Y
		nextDx, nextDy := cells[i+1].X-cells[i].X, cells[i+1].Y-cells[i].Y
		if prevDx != nextDx || prevDy != nextDy {
			points = append(points, toWorld(cells[i]))
		}
	}
	if len(cells) > 1 {
		points = append(points, toWorld(cells[len(cells)-1]))
	}
	return points
}

// PathCells returns the grid cells a smoothed polyline crosses, expanding
// each straight segment back into unit steps. Used to mark a successful
// route as a soft obstacle for subsequent routing attempts.
func PathCells(g *Grid, points []circuit.Position) []Cell {
	var cells []Cell
	if len(points) == 0 {
		return cells
	}
	cur := g.WorldToCell(points[0])
	cells = append(cells, cur)
	for i := 1; i < len(points); i++ {
		target := g.WorldToCell(points[i])
		for cur != target {
			switch {
			case cur.X < target.X:
				cur.X++
			case cur.X > target.X:
				cur.X--
			case cur.Y < target.Y:
				cur.Y++
			case cur.Y > target.Y:
				cur.Y--
			}
			cells = append(cells, cur)
		}
	}
	return cells
}

// priorityQueue is a container/heap min-heap over A* f-scores, the same
// idiom katalvlaran/lvlath uses for its Dijkstra open set.
type priorityQueue []pqItem

type pqItem struct {
	cell Cell
	f    float64
}

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
