// circuit-planner derives the electrical design from a floor-plan drawing
// snapshot: circuits, protection, cable sizing, compliance findings, panel
// and cable schedules, and a single-line schematic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"circuit-planner/internal/version"
)

func main() {
	root := &cobra.Command{
		Use:           "circuit-planner",
		Short:         "Electrical design derivation and compliance checking for floor-plan drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagSymbols, "symbols", "", "symbol registry JSON file (default: built-in set)")
	root.PersistentFlags().StringVar(&flagPolicy, "policy", "", "design policy YAML/JSON file (default: built-in policy)")
	root.PersistentFlags().StringVar(&flagTables, "tables", "", "engineering tables YAML/JSON file (default: built-in tables)")
	root.PersistentFlags().Float64Var(&flagScale, "scale", 0, "pixels per meter, overriding the snapshot's scale")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newScheduleCmd())
	root.AddCommand(newSchematicCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
