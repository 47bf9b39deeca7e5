package guidance

import (
	"log"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

// Generator derives indoor guidance from the authored floor and room structure.
// It never uses the navigation graph.
type Generator struct {
	debugLevel int
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (gen *Generator) SetDebugLevel(level int) {
	gen.debugLevel = level
}

// Describes the indoor part of a route
type PlanRequest struct {
	Building    campus.Point         // destination building, its ground floor is the entry floor
	Origin      *campus.RoomLocation // room the route starts in, nil when starting outdoors
	Destination *campus.RoomLocation // room the route ends in, nil when no room is requested
}

func recoverInstructions(result *Instructions) {
	if r := recover(); r != nil {
		log.Printf("Failed to generate instructions: %v\n", r)
		*result = NewInstructions()
	}
}

func displayName(r campus.Room) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Description
}

// Instructions for the elevators and stairs of a floor.
// If the destination room is on this floor, each instruction counts the rooms between the element and the destination
func (gen *Generator) GenerateRouteInstructions(floor campus.Floor, destination *campus.Room) (result Instructions) {
	defer recoverInstructions(&result)
	return gen.floorInstructions(floor, destination, floor, DirectionNone, floor.Level)
}

// Guidance between two rooms of the same floor (given by their authored positions)
func (gen *Generator) SameFloorGuidance(floor campus.Floor, from, to int) (result []Instruction) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Failed to generate same floor guidance: %v\n", r)
			result = make([]Instruction, 0)
		}
	}()

	result = make([]Instruction, 0, 1)
	if from < 0 || to < 0 || from >= len(floor.Rooms) || to >= len(floor.Rooms) || from == to {
		return result
	}
	order := SortedRooms(floor)
	positions := sortedPositions(floor)
	start, end := positions[from], positions[to]

	side, step := SideRight, 1
	if end < start {
		side, step = SideLeft, -1
	}
	via := make([]string, 0)
	for p := start + step; p != end; p += step {
		via = append(via, floor.Rooms[order[p]].Label())
	}

	destination := floor.Rooms[to]
	ins := Instruction{
		Kind:         KindSameFloor,
		Name:         destination.Label(),
		Room:         destination,
		Level:        floor.Level,
		TargetLevel:  floor.Level,
		Side:         side,
		RoomsBetween: len(via),
		Via:          via,
		Destination:  destination.Label(),
	}
	ins.Text = describe(ins)
	if gen.debugLevel >= 1 {
		log.Printf("Level %v: %v\n", floor.Level, ins.Text)
	}
	return append(result, ins)
}

// Guidance for the indoor part of a route.
// Within the same building on the same level, the rooms in between are described.
// Within the same building on another level, the circulation of the origin floor is described.
// Entering a building, the circulation of its ground floor is described.
func (gen *Generator) Plan(req PlanRequest) (result Instructions) {
	defer recoverInstructions(&result)

	if req.Destination == nil {
		return NewInstructions()
	}
	destination := req.Destination

	if origin := req.Origin; origin != nil && origin.Building == destination.Building {
		if origin.Level == destination.Level {
			result = NewInstructions()
			result.SameFloor = gen.SameFloorGuidance(destination.Floor, origin.Index, destination.Index)
			return result
		}
		return gen.floorInstructions(origin.Floor, &destination.Room, destination.Floor, directionBetween(origin.Level, destination.Level), destination.Level)
	}

	entry := destination.Floor
	if req.Building.ID == destination.Building {
		if ground, ok := req.Building.GroundFloor(); ok {
			entry = ground
		}
	} else {
		log.Printf("Room %v is not in building %v, using its own floor\n", destination.Room.Name, req.Building.ID)
	}
	return gen.floorInstructions(entry, &destination.Room, destination.Floor, directionBetween(entry.Level, destination.Level), destination.Level)
}

// Instructions for the circulation of floor. Rooms are counted on the destination floor,
// from the element with the same name to the destination
func (gen *Generator) floorInstructions(floor campus.Floor, destination *campus.Room, destinationFloor campus.Floor, direction Direction, targetLevel int) Instructions {
	result := NewInstructions()
	elevators, stairs := DetectCirculation(floor)

	destinationIndex := -1
	if destination != nil {
		destinationIndex = IndexOfRoom(destinationFloor, *destination)
		if destinationIndex < 0 && gen.debugLevel >= 1 {
			log.Printf("Room %v not found on level %v\n", destination.Name, destinationFloor.Level)
		}
	}

	build := func(idx int, kind Kind) Instruction {
		room := floor.Rooms[idx]
		ins := Instruction{
			Kind:        kind,
			Name:        displayName(room),
			Room:        room,
			Level:       floor.Level,
			TargetLevel: targetLevel,
			Direction:   direction,
		}
		anchors := gen.ResolveAnchors(floor, idx)
		for _, a := range anchors {
			ins.Anchors = append(ins.Anchors, floor.Rooms[a])
		}
		if len(ins.Anchors) > 0 {
			anchor := ins.Anchors[0]
			ins.Anchor = &anchor
		}
		if destinationIndex >= 0 {
			from := idx
			if destinationFloor.Level != floor.Level {
				from = counterpart(destinationFloor, room, kind)
			}
			if from >= 0 {
				ins.RoomsBetween = RoomsBetween(destinationFloor, from, destinationIndex)
				ins.Destination = destinationFloor.Rooms[destinationIndex].Label()
			}
		}
		ins.Text = describe(ins)
		if gen.debugLevel >= 1 {
			log.Printf("Level %v: %v\n", floor.Level, ins.Text)
		}
		return ins
	}

	for _, idx := range elevators {
		result.Elevators = append(result.Elevators, build(idx, KindElevator))
	}
	for _, idx := range stairs {
		result.Stairs = append(result.Stairs, build(idx, KindStairs))
	}
	return result
}

// Position of the circulation room on another floor which carries the same name, -1 if there is none
func counterpart(floor campus.Floor, room campus.Room, kind Kind) int {
	for i, r := range floor.Rooms {
		if k, ok := Classify(r); ok && k == kind && strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(room.Name)) {
			return i
		}
	}
	return -1
}

// Instructions for a floor with a default generator
func GenerateRouteInstructions(floor campus.Floor, destination *campus.Room) Instructions {
	return NewGenerator().GenerateRouteInstructions(floor, destination)
}

// Plan the indoor part of a route with a default generator
func Plan(req PlanRequest) Instructions {
	return NewGenerator().Plan(req)
}
