package walkway

import (
	"github.com/natevvv/campus-navigation/pkg/geometry"
)

type PathType int

const (
	Unknown PathType = iota
	Footway
	Path
	Pedestrian
	Steps
	Corridor
	Service
)

func (t PathType) String() string {
	return []string{"Unknown", "Footway", "Path", "Pedestrian", "Steps", "Corridor", "Service"}[t]
}

// Classify the value of a highway tag. Everything not walkable on campus is Unknown
func ParsePathType(highway string) PathType {
	switch highway {
	case "footway":
		return Footway
	case "path":
		return Path
	case "pedestrian", "living_street":
		return Pedestrian
	case "steps":
		return Steps
	case "corridor":
		return Corridor
	case "service":
		return Service
	default:
		return Unknown
	}
}

type Node struct {
	ID       int64
	Location geometry.Point
	Tags     map[string]string
}

func (n Node) Name() string { return n.Tags["name"] }

// A walkable way, given by its node ids
type Segment struct {
	ID      int64
	Type    PathType
	NodeIDs []int64
	Tags    map[string]string
}

// A named building outline
type Building struct {
	ID      int64
	Name    string
	NodeIDs []int64
}
