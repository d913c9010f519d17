// Package schematic builds the abstract single-line diagram from the
// circuit and switchboard model. The topology is assembled as a directed
// gonum graph (supply toward load) and flattened into a plain scene graph
// of nodes, edges, and labels for rendering or export. Nothing here reads
// or writes physical drawing coordinates; layout positions are synthesized
// from scratch.
package schematic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"circuit-planner/internal/model"
	"circuit-planner/pkg/geometry"
)

// Layout spacing constants, in abstract schematic units.
const (
	busbarSpacingY  = 120 // vertical gap between mains and each busbar
	takeoffSpacingX = 80  // horizontal gap between circuit takeoffs on a busbar
	chainSpacingY   = 60  // vertical gap between elements of a circuit chain
)

// node is a schematic element inside the working graph. It satisfies
// graph.Node so the topology can live in a simple.DirectedGraph while it is
// assembled.
type node struct {
	id      int64
	key     string
	kind    model.SchematicNodeKind
	label   string
	pos     geometry.Point2D
	circuit int
}

func (n *node) ID() int64 { return n.id }

// builder accumulates the working graph.
type builder struct {
	g     *simple.DirectedGraph
	next  int64
	byKey map[string]*node
}

func newBuilder() *builder {
	return &builder{g: simple.NewDirectedGraph(), byKey: make(map[string]*node)}
}

func (b *builder) add(key string, kind model.SchematicNodeKind, label string, pos geometry.Point2D, circuit int) *node {
	n := &node{id: b.next, key: key, kind: kind, label: label, pos: pos, circuit: circuit}
	b.next++
	b.g.AddNode(n)
	b.byKey[key] = n
	return n
}

func (b *builder) connect(from, to *node) {
	b.g.SetEdge(b.g.NewEdge(from, to))
}

// Synthesize builds the single-line diagram for the given circuits and the
// distribution devices present in the model. It is a pure function: the
// inputs are never mutated, and the same circuit/switchboard model always
// yields the same scene graph. A caller toggling between physical and
// schematic views must snapshot the physical model itself; synthesis only
// guarantees it leaves its inputs untouched.
func Synthesize(circuits []model.Circuit, devices []model.Device) model.SchematicGraph {
	if len(circuits) == 0 {
		return model.SchematicGraph{Nodes: []model.SchematicNode{}, Edges: []model.SchematicEdge{}, NoData: true}
	}

	b := newBuilder()
	mains := b.add("mains", model.NodeMains, "Mains Supply", geometry.Point2D{}, 0)

	boards := switchboards(devices)
	busbars := make([]*node, 0, len(boards))
	if len(boards) == 0 {
		// No switchboard drawn: synthesize a single implicit main board so
		// circuits still have a busbar to take off from.
		busbars = append(busbars, b.add("busbar:MSB", model.NodeBusbar, "Main Switchboard",
			geometry.NewPoint2D(0, busbarSpacingY), 0))
	}
	for i, board := range boards {
		busbars = append(busbars, b.add("busbar:"+board.ID, model.NodeBusbar, "Switchboard "+board.ID,
			geometry.NewPoint2D(float64(i)*4*takeoffSpacingX, busbarSpacingY), 0))
	}
	for _, bus := range busbars {
		b.connect(mains, bus)
	}

	// The physical model carries no explicit circuit-to-board linkage, so
	// each circuit takes off from the busbar of the switchboard nearest
	// its device centroid, matching the route-length attribution.
	byID := make(map[string]model.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}
	slots := make([]int, len(busbars))
	for _, c := range circuits {
		idx := 0
		if len(boards) > 0 {
			idx = nearestBoard(c, byID, boards)
		}
		buildChain(b, busbars[idx], c, slots[idx])
		slots[idx]++
	}

	return flatten(b)
}

// nearestBoard picks the index of the switchboard closest to the circuit's
// device centroid. Circuits with no locatable devices fall to the first
// board; ties resolve to the lower board index, so attribution is
// deterministic.
func nearestBoard(c model.Circuit, byID map[string]model.Device, boards []model.Device) int {
	var points []geometry.Point2D
	for _, id := range c.DeviceIDs {
		if d, ok := byID[id]; ok {
			points = append(points, d.Position)
		}
	}
	if len(points) == 0 {
		return 0
	}
	centroid := geometry.Centroid(points)
	best := 0
	bestDist := centroid.Distance(boards[0].Position)
	for i, board := range boards[1:] {
		if d := centroid.Distance(board.Position); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

// switchboards returns the distribution devices sorted by ID.
func switchboards(devices []model.Device) []model.Device {
	var boards []model.Device
	for _, d := range devices {
		if d.Category == model.CategoryDistribution {
			boards = append(boards, d)
		}
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID < boards[j].ID })
	return boards
}

// buildChain lays out one circuit's takeoff-breaker-(RCD)-load chain below
// the busbar, at the circuit's slot along it.
func buildChain(b *builder, bus *node, c model.Circuit, slot int) {
	x := bus.pos.X + float64(slot+1)*takeoffSpacingX
	y := bus.pos.Y

	prefix := fmt.Sprintf("c%d:", c.Number)
	takeoff := b.add(prefix+"takeoff", model.NodeTakeoff, fmt.Sprintf("C%d", c.Number),
		geometry.NewPoint2D(x, y), c.Number)
	b.connect(bus, takeoff)

	y += chainSpacingY
	breaker := b.add(prefix+"breaker", model.NodeBreaker, fmt.Sprintf("%.0fA MCB", c.BreakerRatingAmps),
		geometry.NewPoint2D(x, y), c.Number)
	b.connect(takeoff, breaker)

	upstream := breaker
	if c.RCDRequired {
		y += chainSpacingY
		rcd := b.add(prefix+"rcd", model.NodeRCD, "30mA RCD",
			geometry.NewPoint2D(x, y), c.Number)
		b.connect(upstream, rcd)
		upstream = rcd
	}

	y += chainSpacingY
	load := b.add(prefix+"load", model.NodeLoad,
		fmt.Sprintf("%s  %.0fW", c.Description(), c.TotalLoadWatts),
		geometry.NewPoint2D(x, y), c.Number)
	b.connect(upstream, load)
}

// flatten exports the working graph as the plain scene graph. Node order is
// topological (supply before load); the stabilized sort keeps the order
// deterministic across runs, which the stale-result contract depends on.
func flatten(b *builder) model.SchematicGraph {
	sorted, err := topo.SortStabilized(b.g, nil)
	if err != nil {
		// The builder only creates tree-shaped topologies; an ordering
		// failure would be a programming error, so fall back to ID order.
		sorted = graph.NodesOf(b.g.Nodes())
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	}

	out := model.SchematicGraph{
		Nodes: make([]model.SchematicNode, 0, len(sorted)),
		Edges: []model.SchematicEdge{},
	}
	for _, gn := range sorted {
		n := gn.(*node)
		out.Nodes = append(out.Nodes, model.SchematicNode{
			ID:            n.key,
			Kind:          n.kind,
			Label:         n.label,
			Position:      n.pos,
			CircuitNumber: n.circuit,
		})
	}
	for _, gn := range sorted {
		from := gn.(*node)
		to := graph.NodesOf(b.g.From(from.ID()))
		sort.Slice(to, func(i, j int) bool { return to[i].(*node).key < to[j].(*node).key })
		for _, t := range to {
			out.Edges = append(out.Edges, model.SchematicEdge{
				From: from.key,
				To:   t.(*node).key,
			})
		}
	}
	return out
}
