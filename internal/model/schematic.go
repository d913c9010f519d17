package model

import "circuit-planner/pkg/geometry"

// SchematicNodeKind identifies a node in the single-line diagram.
type SchematicNodeKind string

const (
	NodeMains   SchematicNodeKind = "mains"
	NodeBusbar  SchematicNodeKind = "busbar"
	NodeTakeoff SchematicNodeKind = "takeoff"
	NodeBreaker SchematicNodeKind = "breaker"
	NodeRCD     SchematicNodeKind = "rcd"
	NodeLoad    SchematicNodeKind = "load"
)

// SchematicNode is one element of the synthesized single-line diagram. Its
// position is a pure layout artifact with no relationship to any device's
// physical drawing coordinates.
type SchematicNode struct {
	ID       string            `json:"id"`
	Kind     SchematicNodeKind `json:"kind"`
	Label    string            `json:"label"`
	Position geometry.Point2D  `json:"position"`

	// CircuitNumber links circuit-chain nodes back to their circuit;
	// zero for mains and busbar nodes.
	CircuitNumber int `json:"circuit_number,omitempty"`
}

// SchematicEdge connects two nodes, directed from supply toward load.
type SchematicEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// SchematicGraph is the abstract single-line topology handed to renderers
// and exporters. It is a pure function of the circuit/switchboard model.
type SchematicGraph struct {
	Nodes  []SchematicNode `json:"nodes"`
	Edges  []SchematicEdge `json:"edges"`
	NoData bool            `json:"no_data,omitempty"`
}

// Node returns the node with the given ID, or false.
func (g SchematicGraph) Node(id string) (SchematicNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return SchematicNode{}, false
}

// NodesOfKind returns all nodes of one kind in layout order.
func (g SchematicGraph) NodesOfKind(kind SchematicNodeKind) []SchematicNode {
	var out []SchematicNode
	for _, n := range g.Nodes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}
