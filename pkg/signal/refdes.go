package signal

import (
	"strconv"
	"strings"
)

// Reference designator prefix of every component group.
var groupPrefix = map[string]string{
	"AudioOutGroup":                    "BA",
	"CapacitorGroup":                   "C",
	"DigitalDevicesAndMicrochipsGroup": "D",
	"PowerSourceGroup":                 "G",
	"BatteryGroup":                     "GB",
	"DisplayGroup":                     "HG",
	"LedGroup":                         "HL",
	"RelayGroup":                       "K",
	"InductorGroup":                    "L",
	"LAnalizerGroup":                   "LA",
	"OscopeGroup":                      "O",
	"AmperimeterGroup":                 "PA",
	"FreqMeterGroup":                   "PF",
	"VoltimeterGroup":                  "PV",
	"ResistorGroup":                    "R",
	"PotentiometerGroup":               "RP",
	"VarResistorGroup":                 "RU",
	"SwitchGroup":                      "S",
	"ButtonGroup":                      "SB",
	"KeyPadGroup":                      "XS",
}

var typeGroup = map[string]string{
	"AudioOut":       "AudioOutGroup",
	"Capacitor":      "CapacitorGroup",
	"MCU":            "DigitalDevicesAndMicrochipsGroup",
	"Subcircuit":     "DigitalDevicesAndMicrochipsGroup",
	"I2CToParallel":  "DigitalDevicesAndMicrochipsGroup",
	"BcdTo7S":        "DigitalDevicesAndMicrochipsGroup",
	"Rail":           "PowerSourceGroup",
	"Fixed Voltage":  "PowerSourceGroup",
	"Voltage Source": "PowerSourceGroup",
	"Battery":        "BatteryGroup",
	"Led":            "LedGroup",
	"LedRgb":         "LedGroup",
	"LedBar":         "LedGroup",
	"LedMatrix":      "LedGroup",
	"Max72xx_matrix": "LedGroup",
	"WS2812":         "LedGroup",
	"Hd44780":        "DisplayGroup",
	"Aip31068_i2c":   "DisplayGroup",
	"Pcd8544":        "DisplayGroup",
	"Ks0108":         "DisplayGroup",
	"Ssd1306":        "DisplayGroup",
	"Ili9341":        "DisplayGroup",
	"RelaySPST":      "RelayGroup",
	"Inductor":       "InductorGroup",
	"LAnalizer":      "LAnalizerGroup",
	"Oscope":         "OscopeGroup",
	"Amperimeter":    "AmperimeterGroup",
	"FreqMeter":      "FreqMeterGroup",
	"Voltimeter":     "VoltimeterGroup",
	"Resistor":       "ResistorGroup",
	"ResistorDip":    "ResistorGroup",
	"Potentiometer":  "PotentiometerGroup",
	"VarResistor":    "VarResistorGroup",
	"SwitchDip":      "SwitchGroup",
	"Switch":         "SwitchGroup",
	"Push":           "ButtonGroup",
	"KeyPad":         "KeyPadGroup",
}

// Lower-cased item types and group names, mapped to the group name.
var groupByFold = func() map[string]string {
	m := make(map[string]string, len(typeGroup)+len(groupPrefix))
	for g := range groupPrefix {
		m[strings.ToLower(g)] = g
	}
	for t, g := range typeGroup {
		m[strings.ToLower(t)] = g
	}
	return m
}()

// groupOf resolves an item type or group name, ignoring case, to its group
// and prefix.
func groupOf(itemType string) (group, prefix string, ok bool) {
	group = groupByFold[strings.ToLower(strings.TrimSpace(itemType))]
	prefix, ok = groupPrefix[group]
	return group, prefix, ok
}

// DesignatorPrefix returns the reference designator prefix for an item type,
// or "" when the type belongs to no group. Group names are accepted as well.
func DesignatorPrefix(itemType string) string {
	_, prefix, _ := groupOf(itemType)
	return prefix
}

// PositionalDesignation returns the next reference designator for an item
// type: R1, R2, C1, ... Counters are shared by all types of a group, so a
// Resistor and a ResistorDip never get the same number. Unknown types yield "".
func (e *Engine) PositionalDesignation(itemType string) string {
	group, prefix, ok := groupOf(itemType)
	if !ok {
		return ""
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.refdes[group]++
	return prefix + strconv.Itoa(e.refdes[group])
}
