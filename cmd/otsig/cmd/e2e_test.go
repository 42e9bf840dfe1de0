package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	// Reset flags to prevent accumulation between tests
	verbose = false
	configPath = "otsig.yaml"
	showTypes = false
	schemePath = ""
	outputPath = ""
	renderSize = 6
	renderLegend = false

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done

	return buf.String(), err
}

const displayCirc = "../testdata/display.circ"

func TestCommandsE2E(t *testing.T) {
	dir := t.TempDir()
	legendConfig := filepath.Join(dir, "legend.yaml")
	if err := os.WriteFile(legendConfig, []byte("legend: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	badConfig := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badConfig, []byte("default_line_width: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantMissing []string
	}{
		{
			name: "nets",
			args: []string{"nets", displayCirc},
			wantContain: []string{
				"Components: 7, Wires: 9, Nets: 7",
				"Net 5: Rail2-0-pin",
				"Pins (6): LCD1-5-PinVcc, Node-1-0, Node-1-1, Node-1-2, R1-0-pin0, Rail2-0-pin",
				"Net 7: Rail1-0-pin",
			},
		},
		{
			name: "colorize designations",
			args: []string{"colorize", displayCirc},
			wantContain: []string{
				"Nets: 7",
				"RST              Control Signals  #ff00ff",
				"MOSI             Data Signals     #0000ff",
				"+3.3V            Power            #9b0000",
				"+5V              Power            #ff0000",
				"GND              Power            #000000",
			},
			wantMissing: []string{"Legend"},
		},
		{
			name: "colorize types",
			args: []string{"colorize", "--types", displayCirc},
			wantContain: []string{
				"GND              Power            #ff0000",
				"+3.3V            Power            #ff0000",
			},
		},
		{
			name: "colorize with legend from config",
			args: []string{"colorize", "--config", legendConfig, displayCirc},
			wantContain: []string{"Legend (designations): 7 entries"},
		},
		{
			name: "legend",
			args: []string{"legend", displayCirc},
			wantContain: []string{
				"Legend (designations): 7 entries\n" +
					"  #000000  GND\n" +
					"  #9b0000  +3.3V\n" +
					"  #ff0000  +5V\n" +
					"  #0000ff  MOSI\n" +
					"  #ff00ff  CS\n" +
					"  #ff00ff  DC\n" +
					"  #ff00ff  RST\n",
			},
		},
		{
			name: "legend types",
			args: []string{"legend", "-t", displayCirc},
			wantContain: []string{
				"Legend (types): 3 entries\n" +
					"  #ff0000  Power\n" +
					"  #0000ff  Data Signals\n" +
					"  #ff00ff  Control Signals\n",
			},
		},
		{
			name: "export to stdout",
			args: []string{"export", displayCirc},
			wantContain: []string{
				"<colorSchemeConfig>",
				`<net name="GND1-0-gnd" designation="GND" designationInfo="Common ground"`,
				`  <pin id="LCD1-6-PinGnd"/>`,
				"</colorSchemeConfig>",
			},
		},
		{
			name: "import",
			args: []string{"import", displayCirc, "../testdata/display.cscfg"},
			wantContain: []string{
				"Applied 1 of 7 nets",
				"NRESET           Board Control    #ffa500  5",
				"CS               Control Signals  #ff00ff  3",
			},
		},
		{
			name: "refdes",
			args: []string{"refdes", displayCirc},
			wantContain: []string{
				"Rail1        Rail             G1",
				"Rail2        Rail             G2",
				"GND1         Ground           -",
				"MCU1         MCU              D1",
				"LCD1         Pcd8544          HG1",
				"R1           Resistor         R1",
				"Node-1       Node             -",
			},
		},
		{
			name:    "broken scheme",
			args:    []string{"import", displayCirc, "../testdata/broken.cscfg"},
			wantErr: true,
		},
		{
			name:    "missing circuit",
			args:    []string{"nets", filepath.Join(dir, "none.circ")},
			wantErr: true,
		},
		{
			name:    "invalid config",
			args:    []string{"nets", "--config", badConfig, displayCirc},
			wantErr: true,
		},
		{
			name: "render svg",
			args: []string{"render", "--legend", "-o", filepath.Join(dir, "display.svg"), displayCirc},
			wantContain: []string{"Rendered 15 segments to"},
		},
		{
			name:    "render without output",
			args:    []string{"render", displayCirc},
			wantErr: true,
		},
		{
			name:    "missing argument",
			args:    []string{"colorize"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCLI(t, tt.args...)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s", err, output)
				return
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing %q\nGot:\n%s", want, output)
				}
			}
			for _, miss := range tt.wantMissing {
				if strings.Contains(output, miss) {
					t.Errorf("Output should not contain %q\nGot:\n%s", miss, output)
				}
			}
		})
	}
}

func TestExportImportRoundTripE2E(t *testing.T) {
	scheme := filepath.Join(t.TempDir(), "display.cscfg")

	output, err := runCLI(t, "export", "-o", scheme, displayCirc)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(output, "Scheme with 7 nets saved to") {
		t.Errorf("unexpected export output:\n%s", output)
	}

	output, err = runCLI(t, "import", displayCirc, scheme)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(output, "Applied 7 of 7 nets") {
		t.Errorf("unexpected import output:\n%s", output)
	}
}

func TestColorizeSavesScheme(t *testing.T) {
	scheme := filepath.Join(t.TempDir(), "out.cscfg")
	if _, err := runCLI(t, "colorize", "--scheme", scheme, displayCirc); err != nil {
		t.Fatalf("colorize: %v", err)
	}
	data, err := os.ReadFile(scheme)
	if err != nil {
		t.Fatalf("scheme not written: %v", err)
	}
	if !strings.Contains(string(data), `designation="+5V"`) {
		t.Errorf("scheme missing +5V net:\n%s", data)
	}
}
