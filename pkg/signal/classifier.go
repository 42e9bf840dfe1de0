package signal

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
)

// sourceRule inspects a pin of a power component. f.Value already holds the
// component voltage when the kind has one.
type sourceRule func(f *Flags, pinID string)

// substringRule raises role when the pin id contains match (case-insensitive).
type substringRule struct {
	match string
	role  Role
}

// patternRule raises role when the pin id matches re.
type patternRule struct {
	re   *regexp.Regexp
	role Role
}

var sourceRules = map[circuit.Kind]sourceRule{
	circuit.KindRail: func(f *Flags, _ string) {
		f.Source, f.Rail = true, true
		f.Designation = formatVoltage(f.Value) + "V"
	},
	circuit.KindFixedVoltage: func(f *Flags, _ string) {
		f.Source, f.FixedVolt = true, true
		f.Designation = formatVoltage(f.Value) + "V"
	},
	circuit.KindVoltageSource: func(f *Flags, _ string) {
		f.Source, f.VoltageSource = true, true
		f.Designation = formatVoltage(f.Value) + "V"
	},
	circuit.KindBattery: func(f *Flags, pinID string) {
		f.Source = true
		suffix := "VBATT-"
		if containsFold(pinID, "lPin") {
			f.BattPlus = true
			suffix = "VBATT+"
		} else {
			f.BattMinus = true
		}
		f.Designation = strings.TrimLeft(formatVoltage(f.Value), "+-") + suffix
	},
	circuit.KindGround: func(f *Flags, _ string) {
		f.Source, f.Ground = true, true
	},
}

// destinationRules are checked in order; the first match wins.
var destinationRules = map[circuit.Kind][]substringRule{
	circuit.KindHd44780: {
		{"PinRS", RoleDC},
		{"PinRW", RoleRW},
		{"PinEn", RoleEN},
		{"dataPin", RoleData},
	},
	circuit.KindAip31068I2C: {
		{"PinSCL", RoleSCL},
		{"PinSDA", RoleSDA},
	},
	circuit.KindPcd8544: {
		{"PinRst", RoleReset},
		{"PinScl", RoleSCLK},
		{"PinSi", RoleMOSI},
		{"PinCs", RoleCS},
		{"PinDc", RoleDC},
	},
	circuit.KindKs0108: {
		{"PinRst", RoleReset},
		{"PinRW", RoleRW},
		{"PinEn", RoleEN},
		{"PinDc", RoleDC},
		{"PinCs", RoleCS},
		{"dataPin", RoleData},
	},
	circuit.KindSsd1306: {
		{"PinSck", RoleSCL},
		{"PinSda", RoleSDA},
	},
	circuit.KindIli9341: {
		{"PinRst", RoleReset},
		{"PinSck", RoleSCLK},
		{"PinMosi", RoleMOSI},
		{"PinCs", RoleCS},
		{"PinDc", RoleDC},
	},
	// Every pin of these devices is a data line.
	circuit.KindDht22:        {{"", RoleData}},
	circuit.KindSevenSegment: {{"", RoleData}},
}

var (
	mcuPortRe    = regexp.MustCompile(`(?i)^[\w\s]+-\d+-PORT([A-Z][a-zA-Z0-9]+)$`)
	supplyPortRe = regexp.MustCompile(`(?i)^V\d+$`)
)

// positionalRules map fixed pin positions of bridges and UART ports.
var positionalRules = map[circuit.Kind][]patternRule{
	circuit.KindI2CToParallel: {
		{regexp.MustCompile(`(?i)^I2C\s*to\s*Parallel-\d+-in0$`), RoleSDA},
		{regexp.MustCompile(`(?i)^I2C\s*to\s*Parallel-\d+-in1$`), RoleSCL},
	},
	circuit.KindSerialPort: {
		{regexp.MustCompile(`(?i)^SerialPort-\d+-pin0$`), RoleTx},
		{regexp.MustCompile(`(?i)^SerialPort-\d+-pin1$`), RoleRx},
	},
	circuit.KindEsp01: {
		{regexp.MustCompile(`(?i)^Esp01-\d+-pin0$`), RoleTx},
		{regexp.MustCompile(`(?i)^Esp01-\d+-pin1$`), RoleRx},
	},
}

// ClassifyPin runs the source, destination and multi-role tables for one pin,
// in that order, accumulating into f. Pins of unknown kinds leave f unchanged.
func ClassifyPin(f *Flags, comp *circuit.Component, pinID string) {
	if comp == nil {
		return
	}

	if comp.Kind.IsPowerSource() {
		if comp.Kind.HasVoltage() {
			f.Value = comp.Voltage
		}
		if rule, ok := sourceRules[comp.Kind]; ok {
			rule(f, pinID)
		}
	}

	if _, ok := destinationRules[comp.Kind]; ok {
		f.raise(DestinationRole(comp.Kind, pinID))
	}

	classifyMulti(f, comp.Kind, pinID)
}

// DestinationRole returns the role a peripheral pin plays, or RoleNone.
func DestinationRole(kind circuit.Kind, pinID string) Role {
	for _, r := range destinationRules[kind] {
		if containsFold(pinID, r.match) {
			return r.role
		}
	}
	return RoleNone
}

func classifyMulti(f *Flags, kind circuit.Kind, pinID string) {
	if kind == circuit.KindMCU {
		if containsFold(pinID, "MCLR") {
			f.raise(RoleClear)
			return
		}
		m := mcuPortRe.FindStringSubmatch(pinID)
		if m == nil {
			return
		}
		if !supplyPortRe.MatchString(m[1]) {
			f.addGPIOPort(m[1])
		}
		return
	}

	for _, r := range positionalRules[kind] {
		if r.re.MatchString(pinID) {
			f.raise(r.role)
			return
		}
	}
}

// ClassifyNet aggregates the flags of every live, owned pin of n.
func ClassifyNet(n *Net) Flags {
	var f Flags
	for _, p := range n.Pins {
		if !p.Alive() || p.Owner == nil {
			continue
		}
		ClassifyPin(&f, p.Owner, p.ID)
	}
	return f
}

// formatVoltage renders a signed voltage with one decimal digit when it is
// fractional and none when it is integral.
func formatVoltage(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%+.0f", v)
	}
	return fmt.Sprintf("%+.1f", v)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
