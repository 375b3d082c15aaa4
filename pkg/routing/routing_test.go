package routing

import (
	"testing"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
)

func TestFindPathClearPath(t *testing.T) {
	g := NewGrid(100, 100, 10, nil)
	req := RouteRequest{
		Start:       circuit.Position{X: 5, Y: 5},
		End:         circuit.Position{X: 85, Y: 5},
		StartEgress: circuit.DirRight,
		EndEgress:   circuit.DirLeft,
	}
	path, ok := FindPath(g, req)
	if !ok {
		t.Fatal("expected a path across an empty grid")
	}
	if len(path) < 2 {
		t.Fatalf("expected at least start+end points, got %v", path)
	}
}

func TestFindPathOrthogonality(t *testing.T) {
	g := NewGrid(200, 200, 10, nil)
	req := RouteRequest{
		Start:       circuit.Position{X: 5, Y: 5},
		End:         circuit.Position{X: 185, Y: 95},
		StartEgress: circuit.DirRight,
		EndEgress:   circuit.DirLeft,
	}
	path, ok := FindPath(g, req)
	if !ok {
		t.Fatal("expected a path")
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		if dx != 0 && dy != 0 {
			t.Errorf("segment %d->%d is not axis-aligned: %+v -> %+v", i-1, i, path[i-1], path[i])
		}
	}
}

func TestFindPathBlockedByWall(t *testing.T) {
	g := NewGrid(100, 100, 10, nil)
	for y := 0; y < 10; y++ {
		g.hard[Cell{X: 5, Y: y}] = true
	}
	req := RouteRequest{
		Start:       circuit.Position{X: 5, Y: 55},
		End:         circuit.Position{X: 95, Y: 55},
		StartEgress: circuit.DirRight,
		EndEgress:   circuit.DirLeft,
	}
	_, ok := FindPath(g, req)
	if ok {
		t.Fatal("expected no path through a full-height wall")
	}
}

func TestStampMarksHardCell(t *testing.T) {
	g := NewGrid(100, 20, 10, nil)
	g.Stamp(circuit.Position{X: 50, Y: 10}, 30, 10, 0, 0)
	if !g.IsHard(Cell{X: 5, Y: 1}) {
		t.Errorf("expected cell (5,1) to be hard after stamping a component centered at (50,10)")
	}
}

func TestPortCellOverridesHard(t *testing.T) {
	g := NewGrid(100, 20, 10, map[Cell]bool{{X: 5, Y: 1}: true})
	g.Stamp(circuit.Position{X: 50, Y: 10}, 30, 10, 0, 0)
	if g.IsHard(Cell{X: 5, Y: 1}) {
		t.Error("expected a port cell to never be hard regardless of stamping")
	}
}
