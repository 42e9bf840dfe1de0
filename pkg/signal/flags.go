package signal

import "strings"

// Flags is the working state of one net during classification. It is built
// fresh for every net and discarded once the net's attributes are resolved.
type Flags struct {
	Source      bool
	Destination bool

	// Power sources
	Rail          bool
	FixedVolt     bool
	VoltageSource bool
	BattPlus      bool
	BattMinus     bool
	Ground        bool

	// Control lines
	Reset bool
	Clear bool
	CS    bool
	DC    bool
	EN    bool
	RW    bool
	SCL   bool
	SCLK  bool

	// Data lines
	MISO bool
	MOSI bool
	SDA  bool
	Tx   bool
	Rx   bool
	DATA bool

	GPIO bool

	// Value is the voltage of the last power pin seen.
	Value float64

	// Designation is built up while pins are inspected: a voltage label from
	// a source pin or a GPIO_<port>,<port> list from microcontroller pins.
	Designation string
}

// Role is a single pin role raised by the classifier.
type Role int

const (
	RoleNone Role = iota
	RoleReset
	RoleClear
	RoleCS
	RoleDC
	RoleEN
	RoleRW
	RoleSCL
	RoleSCLK
	RoleMISO
	RoleMOSI
	RoleSDA
	RoleTx
	RoleRx
	RoleData
)

var roleNames = map[Role]string{
	RoleNone:  "none",
	RoleReset: "reset",
	RoleClear: "clear",
	RoleCS:    "cs",
	RoleDC:    "dc",
	RoleEN:    "en",
	RoleRW:    "rw",
	RoleSCL:   "scl",
	RoleSCLK:  "sclk",
	RoleMISO:  "miso",
	RoleMOSI:  "mosi",
	RoleSDA:   "sda",
	RoleTx:    "tx",
	RoleRx:    "rx",
	RoleData:  "data",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// raise sets the flag for role. Tx marks the net as a source, every other
// role marks it as a destination.
func (f *Flags) raise(role Role) {
	switch role {
	case RoleNone:
		return
	case RoleReset:
		f.Reset = true
	case RoleClear:
		f.Clear = true
	case RoleCS:
		f.CS = true
	case RoleDC:
		f.DC = true
	case RoleEN:
		f.EN = true
	case RoleRW:
		f.RW = true
	case RoleSCL:
		f.SCL = true
	case RoleSCLK:
		f.SCLK = true
	case RoleMISO:
		f.MISO = true
	case RoleMOSI:
		f.MOSI = true
	case RoleSDA:
		f.SDA = true
	case RoleRx:
		f.Rx = true
	case RoleData:
		f.DATA = true
	case RoleTx:
		f.Tx = true
		f.Source = true
		return
	}
	f.Destination = true
}

// addGPIOPort appends a microcontroller port to the designation. A
// designation already holding a non-GPIO label is left as is.
func (f *Flags) addGPIOPort(port string) {
	f.GPIO = true
	switch {
	case f.Designation == "":
		f.Designation = "GPIO_" + port
	case strings.Contains(strings.ToUpper(f.Designation), "GPIO"):
		f.Designation += "," + port
	}
}
