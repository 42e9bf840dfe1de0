package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
)

var refdesCmd = &cobra.Command{
	Use:   "refdes <file.circ>",
	Short: "Assign reference designators to the components of a circuit",
	Long: `Number the components of a circuit in declaration order with the
reference designator of their group (R1, R2, C1, HG1, ...). Junction nodes
and types without a group are listed without a designator.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefdes,
}

func init() {
	rootCmd.AddCommand(refdesCmd)
}

func runRefdes(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("  %-12s %-16s %s\n", "ID", "TYPE", "DESIGNATOR")
	for _, comp := range s.circuit.Components() {
		ref := "-"
		if comp.Kind != circuit.KindNode {
			if r := s.engine.PositionalDesignation(comp.ItemType); r != "" {
				ref = r
			}
		}
		fmt.Printf("  %-12s %-16s %s\n", comp.ID, comp.ItemType, ref)
	}
	return nil
}
