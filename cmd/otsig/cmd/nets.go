package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var netsCmd = &cobra.Command{
	Use:   "nets <file.circ>",
	Short: "List the nets of a circuit",
	Long: `Register every wire of a circuit and list the resulting nets with their
pins and segment counts. Wires joined through junction nodes share a net.

Examples:
  otsig nets board.circ
  otsig nets -v board.circ`,
	Args: cobra.ExactArgs(1),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	nets := s.engine.Nets()
	fmt.Printf("Components: %d, Wires: %d, Nets: %d\n\n",
		len(s.circuit.Components()), len(s.circuit.Connectors()), len(nets))
	for i, n := range nets {
		fmt.Printf("Net %d: %s\n", i+1, n.Key)
		fmt.Printf("  Segments: %d\n", n.Segments)
		fmt.Printf("  Pins (%d): %s\n", len(n.PinIDs), strings.Join(n.PinIDs, ", "))
		if verbose {
			fmt.Printf("  Handle: %s\n", n.Handle)
		}
	}
	return nil
}
