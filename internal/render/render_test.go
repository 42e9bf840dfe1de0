package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/signal"
)

func TestSaveSVG(t *testing.T) {
	sc := scene.New()
	sc.AddLine(circuit.Point{X: 0, Y: 0}, circuit.Point{X: 100, Y: 0}, scene.Pen{Color: signal.Red, Width: 3})
	sc.AddLine(circuit.Point{X: 100, Y: 0}, circuit.Point{X: 100, Y: 50}, scene.DefaultPen())

	legend := []signal.LegendEntry{{Color: signal.Red, Label: "+5V"}}
	path := filepath.Join(t.TempDir(), "scene.svg")
	if err := Save(sc, legend, path, Options{Title: "test"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Errorf("output is not SVG:\n%.200s", data)
	}
}

func TestPlotSkipsRemovedSegments(t *testing.T) {
	sc := scene.New()
	seg := sc.AddLine(circuit.Point{}, circuit.Point{X: 1}, scene.DefaultPen())
	sc.Remove(seg)

	if _, err := Plot(sc, nil, ""); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("expected ErrEmptyScene, got %v", err)
	}
}
