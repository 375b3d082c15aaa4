package render

import (
	"testing"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
)

func TestRegistryHasAllRequiredTypes(t *testing.T) {
	required := []string{"junction", "resistor", "led", "battery", "capacitor", "coil", "transistor_npn"}
	for _, typ := range required {
		if _, ok := Get(typ); !ok {
			t.Errorf("expected renderer registered for %q", typ)
		}
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	if _, ok := Get("Resistor"); !ok {
		t.Fatal("expected case-insensitive lookup to find resistor")
	}
}

func TestResistorPorts(t *testing.T) {
	r, _ := Get("resistor")
	c := &circuit.Component{Type: "resistor"}

	left, dir, err := r.Port(c, PortSpec{Index: 0})
	if err != nil {
		t.Fatal(err)
	}
	if left.X != -15 || dir != circuit.DirLeft {
		t.Errorf("left port = %+v dir=%v, want (-15,0) left", left, dir)
	}

	right, dir, err := r.Port(c, PortSpec{Index: 1})
	if err != nil {
		t.Fatal(err)
	}
	if right.X != 15 || dir != circuit.DirRight {
		t.Errorf("right port = %+v dir=%v, want (15,0) right", right, dir)
	}

	w, h := r.BoundingBox(c)
	if w != 30 || h != 10 {
		t.Errorf("bbox = %v x %v, want 30x10", w, h)
	}
}

func TestBatteryPortAliases(t *testing.T) {
	r, _ := Get("battery")
	c := &circuit.Component{Type: "battery"}

	byName, _, err := r.Port(c, PortSpec{Index: -1, Name: "positive"})
	if err != nil {
		t.Fatal(err)
	}
	byAlias, dir, err := r.Port(c, PortSpec{Index: -1, Name: "left"})
	if err != nil {
		t.Fatal(err)
	}
	if byName != byAlias || dir != circuit.DirLeft {
		t.Errorf("expected 'positive' and 'left' to resolve to the same port, got %+v vs %+v", byName, byAlias)
	}
}

func TestTransistorPorts(t *testing.T) {
	r, _ := Get("transistor_npn")
	c := &circuit.Component{Type: "transistor_npn"}

	base, dir, err := r.Port(c, PortSpec{Index: -1, Name: "base"})
	if err != nil {
		t.Fatal(err)
	}
	if base.X != -20 || dir != circuit.DirLeft {
		t.Errorf("base = %+v dir=%v, want (-20,0) left", base, dir)
	}

	collector, dir, err := r.Port(c, PortSpec{Index: -1, Name: "collector"})
	if err != nil {
		t.Fatal(err)
	}
	if collector.Y != -30 || dir != circuit.DirUp {
		t.Errorf("collector = %+v dir=%v, want (0,-30) up", collector, dir)
	}

	emitter, dir, err := r.Port(c, PortSpec{Index: -1, Name: "emitter"})
	if err != nil {
		t.Fatal(err)
	}
	if emitter.Y != 30 || dir != circuit.DirDown {
		t.Errorf("emitter = %+v dir=%v, want (0,30) down", emitter, dir)
	}

	w, h := r.BoundingBox(c)
	if w != 40 || h != 60 {
		t.Errorf("bbox = %v x %v, want 40x60", w, h)
	}
}
