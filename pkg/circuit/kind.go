package circuit

import "strings"

// Kind identifies a known component type of the host circuit editor.
// The set is closed: item types the engine has no rules for map to KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota

	// Power sources
	KindRail
	KindFixedVoltage
	KindVoltageSource
	KindBattery
	KindGround

	// Displays and peripherals
	KindHd44780
	KindAip31068I2C
	KindPcd8544
	KindKs0108
	KindSsd1306
	KindIli9341
	KindDht22
	KindSevenSegment

	// Multi-role devices
	KindMCU
	KindI2CToParallel
	KindSerialPort
	KindEsp01

	// Junction
	KindNode

	// Passive and instrument kinds (reference designators only)
	KindAudioOut
	KindCapacitor
	KindSubcircuit
	KindBcdTo7S
	KindLed
	KindLedRgb
	KindLedBar
	KindLedMatrix
	KindMax72xxMatrix
	KindWS2812
	KindRelaySPST
	KindInductor
	KindLAnalizer
	KindOscope
	KindAmperimeter
	KindFreqMeter
	KindVoltimeter
	KindResistor
	KindResistorDip
	KindPotentiometer
	KindVarResistor
	KindSwitchDip
	KindSwitch
	KindPush
	KindKeyPad
)

// itemTypes maps each kind to the item type string reported by the host.
var itemTypes = map[Kind]string{
	KindRail:          "Rail",
	KindFixedVoltage:  "Fixed Voltage",
	KindVoltageSource: "Voltage Source",
	KindBattery:       "Battery",
	KindGround:        "Ground",
	KindHd44780:       "Hd44780",
	KindAip31068I2C:   "Aip31068_i2c",
	KindPcd8544:       "Pcd8544",
	KindKs0108:        "Ks0108",
	KindSsd1306:       "Ssd1306",
	KindIli9341:       "Ili9341",
	KindDht22:         "Dht22",
	KindSevenSegment:  "Seven Segment",
	KindMCU:           "MCU",
	KindI2CToParallel: "I2CToParallel",
	KindSerialPort:    "SerialPort",
	KindEsp01:         "Esp01",
	KindNode:          "Node",
	KindAudioOut:      "AudioOut",
	KindCapacitor:     "Capacitor",
	KindSubcircuit:    "Subcircuit",
	KindBcdTo7S:       "BcdTo7S",
	KindLed:           "Led",
	KindLedRgb:        "LedRgb",
	KindLedBar:        "LedBar",
	KindLedMatrix:     "LedMatrix",
	KindMax72xxMatrix: "Max72xx_matrix",
	KindWS2812:        "WS2812",
	KindRelaySPST:     "RelaySPST",
	KindInductor:      "Inductor",
	KindLAnalizer:     "LAnalizer",
	KindOscope:        "Oscope",
	KindAmperimeter:   "Amperimeter",
	KindFreqMeter:     "FreqMeter",
	KindVoltimeter:    "Voltimeter",
	KindResistor:      "Resistor",
	KindResistorDip:   "ResistorDip",
	KindPotentiometer: "Potentiometer",
	KindVarResistor:   "VarResistor",
	KindSwitchDip:     "SwitchDip",
	KindSwitch:        "Switch",
	KindPush:          "Push",
	KindKeyPad:        "KeyPad",
}

var kindsByItemType = func() map[string]Kind {
	m := make(map[string]Kind, len(itemTypes))
	for k, s := range itemTypes {
		m[strings.ToLower(s)] = k
	}
	return m
}()

// ParseKind maps a host item type string to a Kind. Matching ignores case.
func ParseKind(itemType string) Kind {
	if k, ok := kindsByItemType[strings.ToLower(strings.TrimSpace(itemType))]; ok {
		return k
	}
	return KindUnknown
}

// String returns the host item type string for the kind.
func (k Kind) String() string {
	if s, ok := itemTypes[k]; ok {
		return s
	}
	return "Unknown"
}

// IsPowerSource reports whether the kind supplies a voltage or a reference potential.
func (k Kind) IsPowerSource() bool {
	switch k {
	case KindRail, KindFixedVoltage, KindVoltageSource, KindBattery, KindGround:
		return true
	}
	return false
}

// HasVoltage reports whether components of this kind carry a configured voltage.
func (k Kind) HasVoltage() bool {
	switch k {
	case KindRail, KindFixedVoltage, KindVoltageSource, KindBattery:
		return true
	}
	return false
}
