package campus

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is an immutable view of the point registry.
// It is built once per registry load and passed explicitly to the graph builder and the search.
type Snapshot struct {
	points      []Point
	index       map[ID]int
	fingerprint uint64
}

// Describes where a room lives
type RoomLocation struct {
	Building ID    // id of the owning building point
	Level    int   // floor level of the room
	Floor    Floor // the floor containing the room
	Room     Room  // the room itself
	Index    int   // authored position of the room on its floor
}

// Create a snapshot of the given points.
// The points are copied, later changes of the input are not visible in the snapshot.
// Points without id and duplicate ids are dropped (the first occurrence wins).
func NewSnapshot(points []Point) *Snapshot {
	s := &Snapshot{
		points: make([]Point, 0, len(points)),
		index:  make(map[ID]int, len(points)),
	}
	for _, p := range points {
		if p.ID == "" {
			log.Printf("Dropping point without id (title %q)\n", p.Title)
			continue
		}
		if _, exists := s.index[p.ID]; exists {
			log.Printf("Dropping duplicate point %v (title %q)\n", p.ID, p.Title)
			continue
		}
		s.index[p.ID] = len(s.points)
		s.points = append(s.points, clonePoint(p))
	}
	s.fingerprint = fingerprint(s.points)
	return s
}

// All points in registry order. The returned slice must not be modified
func (s *Snapshot) Points() []Point { return s.points }

func (s *Snapshot) Len() int { return len(s.points) }

func (s *Snapshot) Point(id ID) (Point, bool) {
	i, ok := s.index[id]
	if !ok {
		return Point{}, false
	}
	return s.points[i], true
}

// Content hash of the snapshot. Equal content yields an equal fingerprint
func (s *Snapshot) Fingerprint() uint64 { return s.fingerprint }

// All points which carry floors
func (s *Snapshot) Buildings() []Point {
	buildings := make([]Point, 0)
	for _, p := range s.points {
		if p.IsBuilding() {
			buildings = append(buildings, p)
		}
	}
	return buildings
}

// All points which may be shown as destinations
func (s *Snapshot) Facilities() []Point {
	facilities := make([]Point, 0)
	for _, p := range s.points {
		if !p.IsWaypoint {
			facilities = append(facilities, p)
		}
	}
	return facilities
}

// Resolve a room reference to its location.
// The reference is matched against room ids first, then secondary ids, then names (case-insensitive).
func (s *Snapshot) ResolveRoom(ref string) (RoomLocation, bool) {
	id := NormalizeID(ref)
	if id == "" {
		return RoomLocation{}, false
	}
	matchers := []func(r Room) bool{
		func(r Room) bool { return r.ID != "" && r.ID == id },
		func(r Room) bool { return r.RecordID != "" && r.RecordID == id },
		func(r Room) bool { return strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(ref)) },
	}
	for _, match := range matchers {
		for _, b := range s.points {
			for _, f := range b.Floors {
				for i, r := range f.Rooms {
					if match(r) {
						return RoomLocation{Building: b.ID, Level: f.Level, Floor: f, Room: r, Index: i}, true
					}
				}
			}
		}
	}
	return RoomLocation{}, false
}

// Resolve a route endpoint. Point ids resolve to themselves, room references resolve
// to the building owning the room, since the search runs on building ids only.
func (s *Snapshot) ResolveEndpoint(ref string) (ID, *RoomLocation, bool) {
	if p, ok := s.Point(NormalizeID(ref)); ok {
		return p.ID, nil, true
	}
	if loc, ok := s.ResolveRoom(ref); ok {
		return loc.Building, &loc, true
	}
	return "", nil, false
}

// Every value is terminated and every list is prefixed with its length, so distinct
// registries never encode to the same byte stream
func fingerprint(points []Point) uint64 {
	d := xxhash.New()
	writeString := func(s string) {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	writeInt := func(n int) {
		writeString(strconv.Itoa(n))
	}
	writeFloat := func(f float64) {
		writeString(strconv.FormatUint(math.Float64bits(f), 16))
	}
	writeInt(len(points))
	for _, p := range points {
		writeString(string(p.ID))
		writeFloat(p.X)
		writeFloat(p.Y)
		writeString(p.Title)
		writeString(p.Description)
		writeString(strconv.FormatBool(p.IsWaypoint))
		writeInt(len(p.Neighbors))
		for _, n := range p.Neighbors {
			writeString(string(n))
		}
		writeInt(len(p.Floors))
		for _, f := range p.Floors {
			writeInt(f.Level)
			writeString(f.FloorPlan)
			writeInt(len(f.Rooms))
			for _, r := range f.Rooms {
				writeString(r.Name)
				writeString(r.Description)
				writeString(string(r.ID))
				writeString(string(r.RecordID))
				if r.Order != nil {
					writeInt(*r.Order)
				} else {
					writeString("-")
				}
				writeInt(len(r.BesideRooms))
				for _, b := range r.BesideRooms {
					writeString(b)
				}
			}
		}
	}
	return d.Sum64()
}
