package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSignals/internal/config"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/signal"
)

// session is a circuit loaded into a scene with every connector registered.
type session struct {
	cfg     *config.Config
	circuit *circuit.Circuit
	scene   *scene.Scene
	engine  *signal.Engine
}

func openSession(path string) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if verbose {
		fmt.Printf("Loading circuit: %s\n\n", path)
	}

	parser, err := circuit.NewParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}
	c, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	eng, err := signal.NewEngine(cfg.Options())
	if err != nil {
		return nil, err
	}
	if verbose {
		eng.WithLogger(log.New(os.Stderr, "otsig: ", 0))
	}

	sc := scene.New()
	scene.Populate(c, sc, eng)
	return &session{cfg: cfg, circuit: c, scene: sc, engine: eng}, nil
}

// colorize classifies every net, honoring the --types override.
func (s *session) colorize(types bool) {
	s.engine.Colorize()
	if types {
		s.engine.SetShowTypes(true)
	}
}

func printNetTable(eng *signal.Engine) {
	nets := eng.Nets()
	fmt.Printf("Nets: %d\n", len(nets))
	fmt.Printf("  %-20s %-16s %-16s %-8s %s\n", "KEY", "DESIGNATION", "TYPE", "COLOR", "WIDTH")
	for _, n := range nets {
		fmt.Printf("  %-20s %-16s %-16s %-8s %g\n",
			n.Key, orDash(n.Designation), orDash(n.Type),
			signal.HexColor(eng.LineColor(n.Handle, eng.ShowTypes())), n.LineWidth)
	}
}

func printLegend(eng *signal.Engine) {
	mode := "designations"
	if eng.ShowTypes() {
		mode = "types"
	}
	entries := eng.Legend()
	fmt.Printf("Legend (%s): %d entries\n", mode, len(entries))
	for _, e := range entries {
		fmt.Printf("  %s  %s\n", signal.HexColor(e.Color), oneLine(e.Label))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return oneLine(s)
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
