package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Point is a location in the planar reference frame shared by all points of a campus
type Point orb.Point

func NewPoint(x, y float64) *Point {
	p := MakePoint(x, y)
	return &p
}

func MakePoint(x, y float64) Point {
	return Point{x, y}
}

// Create a planar point from WGS84 coordinates, projected to web mercator (metres)
func MakePointFromLatLon(lat, lon float64) Point {
	return Point(project.Point(orb.Point{lon, lat}, project.WGS84.ToMercator))
}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Euclidean distance to the other point
func (p Point) DistanceTo(other Point) float64 {
	return planar.Distance(orb.Point(p), orb.Point(other))
}

func (p Point) Orb() orb.Point { return orb.Point(p) }

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}

// Bounding box of the given points
func Bound(points []Point) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, orb.Point(p))
	}
	return mp.Bound()
}
