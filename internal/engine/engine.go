// Package engine wires the pipeline together: extraction, classification,
// calculation, validation, schedules, and schematic synthesis, in that
// order. Compute is a pure, synchronous function of its inputs - it holds
// no state between calls, performs no I/O, and the same shapes and options
// always produce a deeply equal result. Any scheduling, debouncing, or
// stale-result discarding belongs to the caller.
package engine

import (
	"circuit-planner/internal/circuit"
	"circuit-planner/internal/extract"
	"circuit-planner/internal/model"
	"circuit-planner/internal/policy"
	"circuit-planner/internal/schedule"
	"circuit-planner/internal/schematic"
	"circuit-planner/internal/symbol"
	"circuit-planner/internal/validate"
	"circuit-planner/pkg/geometry"
)

// Options carries every external input the engine needs. Registry, Policy,
// and Tables default to the shipped sets when unset; Scale is required.
type Options struct {
	Registry *symbol.Registry
	Policy   *policy.Policy
	Tables   *policy.Tables
	Scale    geometry.Scale
	Layers   []model.Layer

	// RouteLengths overrides the estimated route length per circuit
	// number. Circuits without an entry use an estimate derived from the
	// device positions and the drawing scale.
	RouteLengths map[int]float64
}

// Result is one complete computation over one snapshot.
type Result struct {
	Snapshot  model.Snapshot       `json:"snapshot"`
	Circuits  []model.Circuit      `json:"circuits"`
	Findings  []model.Finding      `json:"findings"`
	Panel     model.PanelSchedule  `json:"panel_schedule"`
	Cable     model.CableSchedule  `json:"cable_schedule"`
	Schematic model.SchematicGraph `json:"schematic"`
}

// Compute runs the full pipeline over a raw shape list.
func Compute(shapes []extract.Shape, opts Options) (Result, error) {
	reg := opts.Registry
	if reg == nil {
		reg = symbol.Builtin()
	}
	pol := policy.Default()
	if opts.Policy != nil {
		pol = *opts.Policy
	}
	tables := policy.DefaultTables()
	if opts.Tables != nil {
		tables = *opts.Tables
	}
	if err := pol.Validate(); err != nil {
		return Result{}, err
	}
	if err := tables.Validate(); err != nil {
		return Result{}, err
	}

	snap, err := extract.Extract(shapes, extract.Options{
		Registry: reg,
		Scale:    opts.Scale,
		Layers:   opts.Layers,
	})
	if err != nil {
		return Result{}, err
	}

	circuits, assigned := circuit.Classify(snap.Devices, pol)
	snap.Devices = assigned

	routes := routeLengths(circuits, snap.Devices, opts.Scale, opts.RouteLengths)
	circuits = circuit.CalculateAll(circuits, snap.Devices, routes, 0, pol, tables)

	ctx := &validate.Context{
		Snapshot: snap,
		Circuits: circuits,
		Policy:   pol,
		Tables:   tables,
		Scale:    opts.Scale,
	}

	return Result{
		Snapshot:  snap,
		Circuits:  circuits,
		Findings:  validate.New().Run(ctx),
		Panel:     schedule.Panel(circuits, pol, tables),
		Cable:     schedule.Cable(snap.Conductors, circuits, snap.Devices, tables),
		Schematic: schematic.Synthesize(circuits, snap.Devices),
	}, nil
}

// routeLengths merges caller-supplied route lengths with estimates for the
// remaining circuits.
func routeLengths(circuits []model.Circuit, devices []model.Device, scale geometry.Scale, overrides map[int]float64) map[int]float64 {
	routes := make(map[int]float64, len(circuits))
	for _, c := range circuits {
		if length, ok := overrides[c.Number]; ok {
			routes[c.Number] = length
			continue
		}
		routes[c.Number] = estimateRoute(c, devices, scale)
	}
	return routes
}

// estimateRoute approximates a circuit's route length as the distance from
// the nearest switchboard to the circuit's farthest device. With no
// switchboard drawn, the drawing origin stands in for the supply point.
func estimateRoute(c model.Circuit, devices []model.Device, scale geometry.Scale) float64 {
	byID := make(map[string]model.Device, len(devices))
	var boards []model.Device
	for _, d := range devices {
		byID[d.ID] = d
		if d.Category == model.CategoryDistribution {
			boards = append(boards, d)
		}
	}

	var farthest float64
	for _, id := range c.DeviceIDs {
		d, ok := byID[id]
		if !ok {
			continue
		}
		var dist float64
		if len(boards) == 0 {
			dist = d.Position.Distance(geometry.Point2D{})
		} else {
			dist = d.Position.Distance(boards[0].Position)
			for _, board := range boards[1:] {
				if bd := d.Position.Distance(board.Position); bd < dist {
					dist = bd
				}
			}
		}
		if dist > farthest {
			farthest = dist
		}
	}
	return scale.PixelsToMeters(farthest)
}
