package graph

import (
	"fmt"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/campus"
	geo "github.com/natevvv/campus-navigation/pkg/geometry"
)

type NodeId = campus.ID

type Graph interface {
	GetNode(id NodeId) *geo.Point
	GetNodeIds() []NodeId
	GetArcsFrom(id NodeId) []Arc
	HasNode(id NodeId) bool
	NodeCount() int
	ArcCount() int
	AsString() string
}

type DynamicGraph interface {
	Graph
	AddNode(id NodeId, p geo.Point) bool
	AddArc(from, to NodeId, distance float64) bool
}

// A weighted connection to a neighbor. The distance is the straight-line distance between both points
type Arc struct {
	To       NodeId
	Distance float64
}

// A directed edge, used when listing all connections of a graph
type Edge struct {
	From     NodeId
	To       NodeId
	Distance float64
}

type Arcs = []Arc

func MakeArc(to NodeId, distance float64) Arc {
	return Arc{To: to, Distance: distance}
}

func MakeEdge(from, to NodeId, distance float64) Edge {
	return Edge{From: from, To: to, Distance: distance}
}

func (a Arc) Destination() NodeId { return a.To }
func (a Arc) Cost() float64       { return a.Distance }

func (e Edge) Destination() NodeId { return e.To }
func (e Edge) Cost() float64       { return e.Distance }
func (e Edge) Invert() Edge {
	return Edge{From: e.To, To: e.From, Distance: e.Distance}
}

// List all edges of the graph, in node order
func Edges(g Graph) []Edge {
	edges := make([]Edge, 0, g.ArcCount())
	for _, id := range g.GetNodeIds() {
		for _, arc := range g.GetArcsFrom(id) {
			edges = append(edges, MakeEdge(id, arc.To, arc.Distance))
		}
	}
	return edges
}

// Check that every arc has a reverse arc
func IsSymmetric(g Graph) bool {
	for _, e := range Edges(g) {
		if !hasArc(g, e.To, e.From) {
			return false
		}
	}
	return true
}

func hasArc(g Graph, from, to NodeId) bool {
	for _, arc := range g.GetArcsFrom(from) {
		if arc.To == to {
			return true
		}
	}
	return false
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id x y"
	for _, id := range g.GetNodeIds() {
		node := g.GetNode(id)
		sb.WriteString(fmt.Sprintf("%v %v %v\n", id, node.X(), node.Y()))
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId distance"
	for _, id := range g.GetNodeIds() {
		for _, arc := range g.GetArcsFrom(id) {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", id, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}
