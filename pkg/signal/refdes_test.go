package signal

import "testing"

func TestDesignatorPrefix(t *testing.T) {
	tests := map[string]string{
		"Resistor":       "R",
		"ResistorDip":    "R",
		"Battery":        "GB",
		"Ssd1306":        "HG",
		"Voltage Source": "G",
		"KeyPadGroup":    "XS",
		"resistor":       "R",
		"VOLTAGE SOURCE": "G",
		"keypadgroup":    "XS",
		"Flux Capacitor": "",
	}
	for in, want := range tests {
		if got := DesignatorPrefix(in); got != want {
			t.Errorf("DesignatorPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPositionalDesignation(t *testing.T) {
	eng, err := NewEngine(nil)
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		itemType string
		want     string
	}{
		{"Resistor", "R1"},
		{"Resistor", "R2"},
		{"Capacitor", "C1"},
		{"ResistorDip", "R3"},
		{"MCU", "D1"},
		{"I2CToParallel", "D2"},
		{"Flux Capacitor", ""},
		{"Capacitor", "C2"},
		{"resistor", "R4"},
		{"CAPACITOR", "C3"},
	}
	for _, s := range steps {
		if got := eng.PositionalDesignation(s.itemType); got != s.want {
			t.Errorf("PositionalDesignation(%q) = %q, want %q", s.itemType, got, s.want)
		}
	}
}

func TestResetRestartsDesignators(t *testing.T) {
	eng, err := NewEngine(nil)
	if err != nil {
		t.Fatal(err)
	}
	eng.PositionalDesignation("Resistor")
	eng.Reset()
	if got := eng.PositionalDesignation("Resistor"); got != "R1" {
		t.Errorf("after Reset got %q, want R1", got)
	}
}
