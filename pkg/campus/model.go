package campus

import (
	"encoding/json"

	"github.com/natevvv/campus-navigation/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// A navigable location: a visible facility or an invisible waypoint.
// Points with floors are buildings.
type Point struct {
	ID          ID      `json:"id" yaml:"id"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	IsWaypoint  bool    `json:"isWaypoint" yaml:"isWaypoint"`
	Neighbors   []ID    `json:"neighbors" yaml:"neighbors"`
	Floors      []Floor `json:"floors,omitempty" yaml:"floors,omitempty"`
}

type Floor struct {
	Level     int    `json:"level" yaml:"level"`
	FloorPlan string `json:"floorPlan,omitempty" yaml:"floorPlan,omitempty"`
	Rooms     []Room `json:"rooms" yaml:"rooms"`
}

type Room struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Order       *int     `json:"order,omitempty" yaml:"order,omitempty"`
	BesideRooms []string `json:"besideRooms,omitempty" yaml:"besideRooms,omitempty"`
	ID          ID       `json:"id,omitempty" yaml:"id,omitempty"`
	RecordID    ID       `json:"_id,omitempty" yaml:"_id,omitempty"`
}

func (p Point) IsBuilding() bool { return len(p.Floors) > 0 }

func (p Point) Location() geometry.Point { return geometry.MakePoint(p.X, p.Y) }

// Return the floor with the given level
func (p Point) Floor(level int) (Floor, bool) {
	for _, f := range p.Floors {
		if f.Level == level {
			return f, true
		}
	}
	return Floor{}, false
}

// Return the ground floor (level 0). If no such floor is authored, the lowest floor is returned
func (p Point) GroundFloor() (Floor, bool) {
	if f, ok := p.Floor(0); ok {
		return f, true
	}
	if len(p.Floors) == 0 {
		return Floor{}, false
	}
	lowest := p.Floors[0]
	for _, f := range p.Floors[1:] {
		if f.Level < lowest.Level {
			lowest = f
		}
	}
	return lowest, true
}

// Display label, the description if set, else the name
func (r Room) Label() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Name
}

// wire representation, accepts both isVisible and isWaypoint
type pointRecord struct {
	ID          ID      `json:"id" yaml:"id"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	IsVisible   *bool   `json:"isVisible" yaml:"isVisible"`
	IsWaypoint  *bool   `json:"isWaypoint" yaml:"isWaypoint"`
	Neighbors   []ID    `json:"neighbors" yaml:"neighbors"`
	Floors      []Floor `json:"floors" yaml:"floors"`
}

func (rec pointRecord) point() Point {
	p := Point{
		ID:          rec.ID,
		X:           rec.X,
		Y:           rec.Y,
		Title:       rec.Title,
		Description: rec.Description,
		Neighbors:   rec.Neighbors,
		Floors:      rec.Floors,
	}
	if rec.IsWaypoint != nil {
		p.IsWaypoint = *rec.IsWaypoint
	} else if rec.IsVisible != nil {
		p.IsWaypoint = !*rec.IsVisible
	}
	return p
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var rec pointRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*p = rec.point()
	return nil
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var rec pointRecord
	if err := value.Decode(&rec); err != nil {
		return err
	}
	*p = rec.point()
	return nil
}

func clonePoint(p Point) Point {
	c := p
	c.Neighbors = append([]ID(nil), p.Neighbors...)
	if p.Floors != nil {
		c.Floors = make([]Floor, len(p.Floors))
		for i, f := range p.Floors {
			c.Floors[i] = f
			c.Floors[i].Rooms = make([]Room, len(f.Rooms))
			for j, r := range f.Rooms {
				c.Floors[i].Rooms[j] = r
				c.Floors[i].Rooms[j].BesideRooms = append([]string(nil), r.BesideRooms...)
				if r.Order != nil {
					order := *r.Order
					c.Floors[i].Rooms[j].Order = &order
				}
			}
		}
	}
	return c
}
