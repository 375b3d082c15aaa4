package svgexport

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/drawing"
)

func TestFormatProducesSVGDocument(t *testing.T) {
	doc := &drawing.Document{
		Width:  500,
		Height: 500,
		Primitives: []drawing.Primitive{
			drawing.Polyline{Points: []circuit.Position{{X: 0, Y: 0}, {X: 10, Y: 0}}, Stroke: "black"},
			drawing.Line{From: circuit.Position{X: 0, Y: 0}, To: circuit.Position{X: 5, Y: 5}, Stroke: "red"},
		},
	}
	result, err := Format(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.MIMEType != "image/svg+xml" {
		t.Errorf("MIMEType = %q, want image/svg+xml", result.MIMEType)
	}
	if !bytes.Contains(result.Content, []byte("<svg")) {
		t.Error("expected output to contain an <svg> element")
	}
	if !bytes.Contains(result.Content, []byte("polyline")) {
		t.Error("expected output to contain a polyline element")
	}
}

func TestFormatUnsupportedFormat(t *testing.T) {
	_, err := Format(&drawing.Document{}, Options{Format: "png"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
