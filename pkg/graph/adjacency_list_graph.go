package graph

import (
	"fmt"

	geo "github.com/natevvv/campus-navigation/pkg/geometry"
)

// Implementation for dynamic graphs, keyed by point id
type AdjacencyListGraph struct {
	ids      []NodeId       // node ids in insertion order
	index    map[NodeId]int // position of each node id in ids
	Nodes    []geo.Point    // The coordinates of the nodes
	Edges    [][]Arc        // The Arcs of the graph. The first slice specifies to which node the arc belongs
	arcCount int            // the number of arcs in the graph
}

func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		ids:   make([]NodeId, 0),
		index: make(map[NodeId]int),
		Nodes: make([]geo.Point, 0),
		Edges: make([][]Arc, 0),
	}
}

// Return the node for the given id, nil if it is not part of the graph
func (alg *AdjacencyListGraph) GetNode(id NodeId) *geo.Point {
	i, ok := alg.index[id]
	if !ok {
		return nil
	}
	return &alg.Nodes[i]
}

// Return all node ids in insertion order
func (alg *AdjacencyListGraph) GetNodeIds() []NodeId {
	return alg.ids
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	i, ok := alg.index[id]
	if !ok {
		return nil
	}
	return alg.Edges[i]
}

func (alg *AdjacencyListGraph) HasNode(id NodeId) bool {
	_, ok := alg.index[id]
	return ok
}

// Check whether an arc from -> to exists
func (alg *AdjacencyListGraph) HasArc(from, to NodeId) bool {
	for _, arc := range alg.GetArcsFrom(from) {
		if arc.To == to {
			return true
		}
	}
	return false
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.ids)
}

// Return the number of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph. Returns false if the id is already taken
func (alg *AdjacencyListGraph) AddNode(id NodeId, p geo.Point) bool {
	if _, exists := alg.index[id]; exists {
		return false
	}
	alg.index[id] = len(alg.ids)
	alg.ids = append(alg.ids, id)
	alg.Nodes = append(alg.Nodes, p)
	alg.Edges = append(alg.Edges, make([]Arc, 0))
	return true
}

// Add an arc to the graph, going from source to target with the given distance.
// Parallel arcs are allowed.
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, distance float64) bool {
	i, ok := alg.index[from]
	if !ok || !alg.HasNode(to) {
		panic(fmt.Sprintf("Arc out of range %v -> %v", from, to))
	}
	alg.Edges[i] = append(alg.Edges[i], MakeArc(to, distance))
	alg.arcCount++
	return true
}

// Add an arc only if the source has no arc to the target yet
func (alg *AdjacencyListGraph) AddArcIfAbsent(from, to NodeId, distance float64) bool {
	if alg.HasArc(from, to) {
		return false
	}
	return alg.AddArc(from, to, distance)
}
