package graph

import (
	geo "github.com/natevvv/campus-navigation/pkg/geometry"
)

// Implementation for static graphs.
// All arcs live in one array, the arcs of node i are arcs[Offsets[i]:Offsets[i+1]].
// The graph has no mutators and can be shared between concurrent searches.
type AdjacencyArrayGraph struct {
	ids     []NodeId
	index   map[NodeId]int
	Nodes   []geo.Point
	arcs    []Arc
	Offsets []int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	ids := g.GetNodeIds()
	aag := &AdjacencyArrayGraph{
		ids:     make([]NodeId, 0, len(ids)),
		index:   make(map[NodeId]int, len(ids)),
		Nodes:   make([]geo.Point, 0, len(ids)),
		arcs:    make([]Arc, 0, g.ArcCount()),
		Offsets: make([]int, len(ids)+1),
	}

	for i, id := range ids {
		// add node
		aag.ids = append(aag.ids, id)
		aag.index[id] = i
		aag.Nodes = append(aag.Nodes, *g.GetNode(id))

		// add all edges of node
		aag.arcs = append(aag.arcs, g.GetArcsFrom(id)...)

		// set stop-offset
		aag.Offsets[i+1] = len(aag.arcs)
	}
	return aag
}

// Get the node for the given id, nil if it is not part of the graph
func (aag *AdjacencyArrayGraph) GetNode(id NodeId) *geo.Point {
	i, ok := aag.index[id]
	if !ok {
		return nil
	}
	return &aag.Nodes[i]
}

func (aag *AdjacencyArrayGraph) GetNodeIds() []NodeId {
	return aag.ids
}

// Get the Arcs for the given node id
func (aag *AdjacencyArrayGraph) GetArcsFrom(id NodeId) []Arc {
	i, ok := aag.index[id]
	if !ok {
		return nil
	}
	// capped, appending to the result must not touch the arcs of the next node
	return aag.arcs[aag.Offsets[i]:aag.Offsets[i+1]:aag.Offsets[i+1]]
}

func (aag *AdjacencyArrayGraph) HasNode(id NodeId) bool {
	_, ok := aag.index[id]
	return ok
}

// Returns the number of Nodes in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.Nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}
