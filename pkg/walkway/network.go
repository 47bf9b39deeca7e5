package walkway

import (
	"log"
	"math"
	"sort"
	"strconv"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/geometry"
	"github.com/natevvv/campus-navigation/pkg/slice"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Network collects the walkable ways, named places and buildings read from an OSM source
type Network struct {
	Nodes     map[int64]Node
	Segments  []*Segment
	Buildings []*Building
}

func NewNetwork() *Network {
	return &Network{
		Nodes:     make(map[int64]Node),
		Segments:  make([]*Segment, 0),
		Buildings: make([]*Building, 0),
	}
}

func NodePointID(id int64) campus.ID { return campus.ID("n" + strconv.FormatInt(id, 10)) }

func BuildingPointID(id int64) campus.ID { return campus.ID("w" + strconv.FormatInt(id, 10)) }

// Add a node given in WGS84 coordinates
func (n *Network) AddNode(id int64, lat, lon float64, tags map[string]string) {
	n.Nodes[id] = Node{ID: id, Location: geometry.MakePointFromLatLon(lat, lon), Tags: tags}
}

// Add a way. Walkable highways become segments, named building outlines become buildings, everything else is ignored.
// Returns whether the way was used
func (n *Network) AddWay(id int64, nodeIDs []int64, tags map[string]string) bool {
	if highway, ok := tags["highway"]; ok {
		pathType := ParsePathType(highway)
		if pathType == Unknown || len(nodeIDs) < 2 {
			return false
		}
		n.Segments = append(n.Segments, &Segment{ID: id, Type: pathType, NodeIDs: nodeIDs, Tags: tags})
		return true
	}
	if _, ok := tags["building"]; ok && tags["name"] != "" && len(nodeIDs) >= 3 {
		n.Buildings = append(n.Buildings, &Building{ID: id, Name: tags["name"], NodeIDs: nodeIDs})
		return true
	}
	return false
}

// Join continuing segments
func (n *Network) Merge() {
	merger := NewMerger(n.Segments)
	merger.Merge()
	if merger.UnmergableSegmentCount() > 0 {
		log.Printf("Ignoring %v segments with less than two nodes\n", merger.UnmergableSegmentCount())
	}
	n.Segments = merger.Segments()
}

// Convert the network to campus points.
// Consecutive nodes of a segment become neighbors in walking direction. Unnamed nodes become waypoints.
// Named nodes off the network are kept as isolated facilities.
// Buildings are placed at the centroid of their outline and connected to the nearest network point.
func (n *Network) Points() []campus.Point {
	points := make([]campus.Point, 0)
	index := make(map[int64]int)

	add := func(id int64) (int, bool) {
		if i, ok := index[id]; ok {
			return i, true
		}
		node, ok := n.Nodes[id]
		if !ok {
			return -1, false
		}
		index[id] = len(points)
		points = append(points, campus.Point{
			ID:         NodePointID(id),
			X:          node.Location.X(),
			Y:          node.Location.Y(),
			Title:      node.Name(),
			IsWaypoint: node.Name() == "",
			Neighbors:  make([]campus.ID, 0),
		})
		return index[id], true
	}

	missing := 0
	for _, seg := range n.Segments {
		for i := 1; i < len(seg.NodeIDs); i++ {
			from, okFrom := add(seg.NodeIDs[i-1])
			to, okTo := add(seg.NodeIDs[i])
			if !okFrom || !okTo {
				missing++
				continue
			}
			if from == to || slice.Contains(points[from].Neighbors, points[to].ID) {
				continue
			}
			points[from].Neighbors = append(points[from].Neighbors, points[to].ID)
		}
	}
	if missing > 0 {
		log.Printf("Skipped %v way links with unknown nodes\n", missing)
	}
	networkSize := len(points)

	named := make([]int64, 0)
	for id, node := range n.Nodes {
		if _, ok := index[id]; !ok && node.Name() != "" {
			named = append(named, id)
		}
	}
	sort.Slice(named, func(i, j int) bool { return named[i] < named[j] })
	for _, id := range named {
		add(id)
	}

	for _, b := range n.Buildings {
		ring := make(orb.Ring, 0, len(b.NodeIDs))
		for _, id := range b.NodeIDs {
			if node, ok := n.Nodes[id]; ok {
				ring = append(ring, node.Location.Orb())
			}
		}
		if len(ring) < 3 {
			log.Printf("Building %v (%v) has no usable outline\n", b.ID, b.Name)
			continue
		}
		centroid, _ := planar.CentroidArea(ring)
		p := campus.Point{
			ID:        BuildingPointID(b.ID),
			X:         centroid[0],
			Y:         centroid[1],
			Title:     b.Name,
			Neighbors: make([]campus.ID, 0),
		}
		if nearest := nearestPoint(points[:networkSize], geometry.Point(centroid)); nearest >= 0 {
			p.Neighbors = append(p.Neighbors, points[nearest].ID)
		}
		points = append(points, p)
	}
	return points
}

func nearestPoint(points []campus.Point, location geometry.Point) int {
	nearest := -1
	minDist := math.MaxFloat64
	for i, p := range points {
		if dist := p.Location().DistanceTo(location); dist < minDist {
			minDist = dist
			nearest = i
		}
	}
	return nearest
}
