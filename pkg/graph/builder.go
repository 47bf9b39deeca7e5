package graph

import (
	"log"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

// Builds the symmetric weighted adjacency of a point set
type Builder struct {
	skippedNeighbors int
	debugLevel       int
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build the adjacency for the given points.
// Every point gets a node (waypoints included). Each authored neighbor adds an arc in the
// authored direction, and a reverse arc unless the neighbor already has one back to the point.
// Neighbors which cannot be resolved are skipped.
func (b *Builder) Build(points []campus.Point) *AdjacencyListGraph {
	g := NewAdjacencyListGraph()
	b.skippedNeighbors = 0

	index := campus.NewPointIndex(points)
	for _, id := range index.IDs() {
		point, _ := index.Lookup(id)
		g.AddNode(point.ID, point.Location())
	}

	for _, id := range g.GetNodeIds() {
		point, _ := index.Lookup(id)
		for _, neighborId := range point.Neighbors {
			neighbor, ok := index.Lookup(neighborId)
			if !ok {
				b.skippedNeighbors++
				if b.debugLevel >= 1 {
					log.Printf("Skipping unknown neighbor %v of point %v\n", neighborId, point.ID)
				}
				continue
			}
			distance := point.Location().DistanceTo(neighbor.Location())
			g.AddArc(point.ID, neighbor.ID, distance)
			g.AddArcIfAbsent(neighbor.ID, point.ID, distance)
		}
	}

	if b.debugLevel >= 1 {
		log.Printf("Built graph with %v nodes and %v arcs (%v unknown neighbors skipped)\n", g.NodeCount(), g.ArcCount(), b.skippedNeighbors)
	}
	return g
}

// Number of authored neighbors which could not be resolved in the last build
func (b *Builder) SkippedNeighbors() int { return b.skippedNeighbors }

// Set the debug level to show different debug messages.
// If it is 0, no debug messages are printed
func (b *Builder) SetDebugLevel(level int) {
	b.debugLevel = level
}

// Build the adjacency for the given points with a default builder
func Build(points []campus.Point) *AdjacencyListGraph {
	return NewBuilder().Build(points)
}
