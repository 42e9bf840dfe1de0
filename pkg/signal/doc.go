// Package signal identifies the electrical nets of a circuit view, infers the
// signal role of each net from the pins it connects, and derives presentation
// attributes for it.
//
// # Overview
//
// The colorize pipeline:
//  1. The host registers every drawn connector with the Registry, which groups
//     wire segments into nets and merges nets that meet at a junction node
//  2. For every net, the Classifier inspects each pin (owner kind and pin id)
//     and raises role flags: power source, control line, data line, GPIO
//  3. Resolve turns the aggregated flags into a designation, a category
//     (type), explanatory texts and colors
//  4. The gradient colorer remaps the designation color of every power net
//     along a dark-to-bright red ramp ordered by voltage
//
// # Usage
//
//	eng, err := signal.NewEngine(signal.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	scene.Populate(circ, sc, eng)
//	eng.Colorize()
//
//	for _, n := range eng.Nets() {
//		fmt.Printf("%s: %s (%s)\n", n.Key, n.Designation, n.Type)
//	}
//
//	text := eng.Export()
//	// ... later, after rebuilding the same circuit
//	if _, err := eng.Import(text); err != nil {
//		log.Printf("scheme not applied: %v", err)
//	}
//
// # Junctions
//
// Junction pins are named "Node-<group>-<n>". Two pins of the same group are
// interchangeable when looking up a net, and Deduplicate collapses every set
// of nets that share a group into the net registered first.
//
// # Classification priority
//
// A net that touches any destination pin (reset, chip-select, clock, data, ...)
// is a control or data signal even when a power pin is also present. Power
// sources come next, then GPIO. Everything else is unclassified and drawn dark
// green.
//
// # Scheme files
//
// Export and Import use a line-oriented XML block (<colorSchemeConfig>). Import
// matches stored nets to live nets by their full pin-id set.
//
// # Dangling references
//
// Pins and segments belong to the host. The engine keeps non-owning references
// and skips any pin or segment whose Alive method reports false; such entries
// are dropped the next time the engine walks its nets.
package signal
