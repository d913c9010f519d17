package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"circuit-planner/internal/engine"
	"circuit-planner/internal/extract"
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/internal/service"
	"circuit-planner/internal/symbol"
	"circuit-planner/pkg/geometry"
)

var (
	flagSymbols string
	flagPolicy  string
	flagTables  string
	flagScale   float64
)

// snapshotFile is the on-disk input: the raw shape list exported by the
// drawing surface plus the drawing's scale and optional route lengths.
type snapshotFile struct {
	Shapes         []extract.Shape `json:"shapes"`
	PixelsPerMeter float64         `json:"pixels_per_meter"`
	Layers         []model.Layer   `json:"layers,omitempty"`
	RouteLengths   map[int]float64 `json:"route_lengths,omitempty"`
}

// loadSnapshot reads a snapshot file and applies the --scale override.
func loadSnapshot(path string) (snapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return snapshotFile{}, err
	}
	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return snapshotFile{}, fmt.Errorf("unmarshal snapshot %s: %w", path, err)
	}
	if flagScale > 0 {
		snap.PixelsPerMeter = flagScale
	}
	return snap, nil
}

// buildOptions assembles engine options from the snapshot and flags.
func buildOptions(snap snapshotFile) (engine.Options, error) {
	opts := engine.Options{Layers: snap.Layers, RouteLengths: snap.RouteLengths}

	scale, err := geometry.NewScale(snap.PixelsPerMeter)
	if err != nil {
		return engine.Options{}, err
	}
	opts.Scale = scale

	if flagSymbols != "" {
		reg, err := symbol.Load(flagSymbols)
		if err != nil {
			return engine.Options{}, fmt.Errorf("load symbols: %w", err)
		}
		opts.Registry = reg
	}
	if flagPolicy != "" {
		pol, err := policy.Load(flagPolicy)
		if err != nil {
			return engine.Options{}, fmt.Errorf("load policy: %w", err)
		}
		opts.Policy = &pol
	}
	if flagTables != "" {
		tables, err := policy.LoadTables(flagTables)
		if err != nil {
			return engine.Options{}, fmt.Errorf("load tables: %w", err)
		}
		opts.Tables = &tables
	}
	return opts, nil
}

// compute loads the snapshot and runs the full pipeline.
func compute(path string) (engine.Result, error) {
	snap, err := loadSnapshot(path)
	if err != nil {
		return engine.Result{}, err
	}
	opts, err := buildOptions(snap)
	if err != nil {
		return engine.Result{}, err
	}
	return engine.Compute(snap.Shapes, opts)
}

func newValidateCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate <snapshot.json>",
		Short: "Check a drawing snapshot against the wiring rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compute(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(result.Findings)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tSEVERITY\tMESSAGE")
			for _, f := range result.Findings {
				fmt.Fprintf(w, "%s\t%s\t%s\n", f.Code, f.Severity, f.Message)
			}
			w.Flush()
			if n := model.CountBySeverity(result.Findings, model.SeverityError); n > 0 {
				return fmt.Errorf("%d error-level finding(s)", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit findings as JSON")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "schedule <snapshot.json>",
		Short: "Generate the panel and cable schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compute(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(map[string]any{
					"panel_schedule": result.Panel,
					"cable_schedule": result.Cable,
				})
			}
			printPanel(result.Panel)
			fmt.Println()
			printCable(result.Cable)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit schedules as JSON")
	return cmd
}

func newSchematicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schematic <snapshot.json>",
		Short: "Synthesize the single-line schematic scene graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compute(args[0])
			if err != nil {
				return err
			}
			return printJSON(result.Schematic)
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the engine as a stateless HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()

			var reg *symbol.Registry
			if flagSymbols != "" {
				if reg, err = symbol.Load(flagSymbols); err != nil {
					return fmt.Errorf("load symbols: %w", err)
				}
			}
			log.Info("listening", zap.String("addr", addr))
			return service.New(log, reg).Router().Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8420", "listen address")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPanel(panel model.PanelSchedule) {
	if panel.NoData {
		fmt.Println("Panel schedule: no circuits")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CCT\tDESCRIPTION\tDEVICES\tLOAD W\tLOAD A\tCABLE mm2\tMCB A\tRCD\tVDROP %\tOK")
	for _, row := range panel.Rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%.1f\t%.1f\t%.0f\t%v\t%.2f\t%v\n",
			row.CircuitNumber, row.Description, row.DeviceCount, row.LoadWatts, row.LoadAmps,
			row.CableSizeMm2, row.BreakerRatingAmps, row.RCDRequired, row.VoltageDropPercent, row.Compliant)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%.0f\t%.1f\t\tmain %.0fA\t\t\t\n",
		panel.Totals.LoadWatts, panel.Totals.LoadAmps, panel.Totals.SuggestedMainBreakerAmps)
	w.Flush()
}

func printCable(cable model.CableSchedule) {
	if cable.NoData {
		fmt.Println("Cable schedule: no conductors")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tSIZE mm2\tRUNS\tLENGTH m\tAMPACITY A\tINSTALLATION")
	for _, row := range cable.Rows {
		fmt.Fprintf(w, "%s\t%.1f\t%d\t%.1f\t%.1f\t%s\n",
			row.Role, row.SizeMm2, row.RunCount, row.TotalLengthMeters, row.AmpacityAmps, row.InstallationMethod)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%.1f\t\t\n", cable.TotalLengthMeters)
	w.Flush()
}
