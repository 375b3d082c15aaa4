package geometry

import (
	"math"
	"testing"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"pgregory.net/rapid"
)

func TestRotatePointIdentity(t *testing.T) {
	p := circuit.Position{X: 10, Y: 5}
	center := circuit.Position{X: 2, Y: 2}
	got := RotatePoint(p, center, 0)
	if got != p {
		t.Errorf("RotatePoint with 0 degrees = %+v, want %+v", got, p)
	}
}

func TestRotatePointInverseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := circuit.Position{
			X: rapid.Float64Range(-1000, 1000).Draw(t, "x"),
			Y: rapid.Float64Range(-1000, 1000).Draw(t, "y"),
		}
		center := circuit.Position{
			X: rapid.Float64Range(-1000, 1000).Draw(t, "cx"),
			Y: rapid.Float64Range(-1000, 1000).Draw(t, "cy"),
		}
		angle := rapid.Float64Range(-720, 720).Draw(t, "angle")

		got := RotatePoint(RotatePoint(p, center, angle), center, -angle)
		if math.Abs(got.X-p.X) > 1e-6 || math.Abs(got.Y-p.Y) > 1e-6 {
			t.Fatalf("round trip rotation = %+v, want %+v", got, p)
		}
	})
}

func TestRotateDirectionCyclesEveryFourSteps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := circuit.Direction(rapid.IntRange(0, 3).Draw(t, "d"))
		steps := rapid.IntRange(-20, 20).Draw(t, "steps")

		got := RotateDirection(d, float64(steps)*90)
		want := RotateDirection(d, float64(((steps%4)+4)%4)*90)
		if got != want {
			t.Fatalf("RotateDirection(%v, %d*90) = %v, want %v matching steps mod 4", d, steps, got, want)
		}
	})
}

func TestRotateDirectionQuarterTurns(t *testing.T) {
	cases := []struct {
		start circuit.Direction
		angle float64
		want  circuit.Direction
	}{
		{circuit.DirRight, 90, circuit.DirDown},
		{circuit.DirRight, 180, circuit.DirLeft},
		{circuit.DirRight, 270, circuit.DirUp},
		{circuit.DirUp, 90, circuit.DirRight},
	}
	for _, c := range cases {
		got := RotateDirection(c.start, c.angle)
		if got != c.want {
			t.Errorf("RotateDirection(%v, %v) = %v, want %v", c.start, c.angle, got, c.want)
		}
	}
}
