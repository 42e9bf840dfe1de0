package signal

import "image/color"

// Signal categories.
const (
	TypePower   = "Power"
	TypeControl = "Control Signals"
	TypeData    = "Data Signals"
	TypeGPIO    = "GPIO"
)

const (
	powerTypeInfo   = "Deliver power, a common reference potential and logic levels"
	controlTypeInfo = "Control device operation by setting states, activating operating modes\nor providing synchronization through clocking"
	dataTypeInfo    = "Carry digital data to and from devices"
	gpioTypeInfo    = "General purpose signals that can be configured as inputs or outputs,\nas analog inputs, PWM outputs\nor external interrupt lines where the hardware supports it"
	gpioInfo        = "Line connected to a general purpose port\nthat can be configured as an input or an output"
)

// destinationSignal is one row of the destination branch.
type destinationSignal struct {
	flag        func(*Flags) bool
	designation string
	info        string
	control     bool
}

// destinationOrder is the priority of the destination branch. Tx is resolved
// in the source branch.
var destinationOrder = []destinationSignal{
	{func(f *Flags) bool { return f.Reset }, "RST", "Device reset", true},
	{func(f *Flags) bool { return f.Clear }, "CLR", "Clear (zero) a register or device", true},
	{func(f *Flags) bool { return f.CS }, "CS", "Device select", true},
	{func(f *Flags) bool { return f.DC }, "DC", "Data/command select", true},
	{func(f *Flags) bool { return f.EN }, "EN", "Operation enable", true},
	{func(f *Flags) bool { return f.RW }, "RW", "Read/write select", true},
	{func(f *Flags) bool { return f.SCL }, "SCL", "Clock of the I²C interface", true},
	{func(f *Flags) bool { return f.SCLK }, "SCLK", "Clock of the SPI interface", true},
	{func(f *Flags) bool { return f.MISO }, "MISO", "SPI data from the slave to the master", false},
	{func(f *Flags) bool { return f.MOSI }, "MOSI", "SPI data from the master to the slave", false},
	{func(f *Flags) bool { return f.SDA }, "SDA", "Data of the I²C interface", false},
	{func(f *Flags) bool { return f.Rx }, "RX", "UART data reception", false},
	{func(f *Flags) bool { return f.DATA }, "DATA", "Data transfer", false},
}

// Resolve maps aggregated flags to net attributes. Destination roles take
// priority over power sources, which take priority over GPIO. Anything else
// is unclassified and drawn in the unclassified color.
func Resolve(f Flags, unclassifiedColor color.NRGBA) Attributes {
	if f.Destination {
		for _, d := range destinationOrder {
			if !d.flag(&f) {
				continue
			}
			if d.control {
				return controlSignal(d.designation, d.info)
			}
			return dataSignal(d.designation, d.info)
		}
	}

	if f.Source {
		switch {
		case f.Rail || f.FixedVolt || f.VoltageSource || f.BattPlus:
			return powerSignal(f.Designation, Red, "Supply voltage")
		case f.BattMinus:
			return powerSignal(f.Designation, Black, "Line connected to the negative terminal of a battery")
		case f.Ground:
			return powerSignal("GND", Black, "Common ground")
		case f.Tx:
			return dataSignal("TX", "UART data transmission")
		}
	}

	if f.GPIO {
		return Attributes{
			Designation:      f.Designation,
			DesignationColor: Green,
			DesignationInfo:  gpioInfo,
			Type:             TypeGPIO,
			TypeColor:        Green,
			TypeInfo:         gpioTypeInfo,
		}
	}

	return unclassified(unclassifiedColor)
}

func controlSignal(designation, info string) Attributes {
	return Attributes{
		Designation:      designation,
		DesignationColor: Magenta,
		DesignationInfo:  info,
		Type:             TypeControl,
		TypeColor:        Magenta,
		TypeInfo:         controlTypeInfo,
	}
}

func dataSignal(designation, info string) Attributes {
	return Attributes{
		Designation:      designation,
		DesignationColor: Blue,
		DesignationInfo:  info,
		Type:             TypeData,
		TypeColor:        Blue,
		TypeInfo:         dataTypeInfo,
	}
}

func powerSignal(designation string, c color.NRGBA, info string) Attributes {
	return Attributes{
		Designation:      designation,
		DesignationColor: c,
		DesignationInfo:  info,
		Type:             TypePower,
		TypeColor:        Red,
		TypeInfo:         powerTypeInfo,
	}
}

// systemTypes own colors that users may not override.
var systemTypes = map[string]bool{
	TypePower:   true,
	TypeControl: true,
	TypeData:    true,
	TypeGPIO:    true,
}

// systemDesignationTypes own designation colors that users may not override.
var systemDesignationTypes = map[string]bool{
	TypePower: true,
}

// IsSystemType reports whether t is one of the built-in categories.
func IsSystemType(t string) bool { return systemTypes[t] }
