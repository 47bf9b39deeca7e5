package guidance

import (
	"fmt"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func directionBetween(from, to int) Direction {
	switch {
	case to > from:
		return DirectionUp
	case to < from:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// A single guidance step.
// For elevators and stairs, Room is the circulation room and Anchor the room it is beside.
// For same floor guidance, Room is the destination and Via lists the rooms passed on the way.
type Instruction struct {
	Kind         Kind          `json:"kind"`
	Name         string        `json:"name"`
	Room         campus.Room   `json:"room"`
	Anchor       *campus.Room  `json:"anchor"`
	Anchors      []campus.Room `json:"anchors,omitempty"`
	Level        int           `json:"level"`
	TargetLevel  int           `json:"targetLevel"`
	Direction    Direction     `json:"direction,omitempty"`
	Side         Side          `json:"side,omitempty"`
	RoomsBetween int           `json:"roomsBetween"`
	Via          []string      `json:"via,omitempty"`
	Destination  string        `json:"destination,omitempty"`
	Text         string        `json:"text"`
}

// Instructions grouped by kind
type Instructions struct {
	Elevators []Instruction `json:"elevators"`
	Stairs    []Instruction `json:"stairs"`
	SameFloor []Instruction `json:"sameFloor"`
}

func NewInstructions() Instructions {
	return Instructions{
		Elevators: make([]Instruction, 0),
		Stairs:    make([]Instruction, 0),
		SameFloor: make([]Instruction, 0),
	}
}

func (ins Instructions) Len() int {
	return len(ins.Elevators) + len(ins.Stairs) + len(ins.SameFloor)
}

// All instructions: same floor guidance first, then elevators, then stairs
func (ins Instructions) All() []Instruction {
	all := make([]Instruction, 0, ins.Len())
	all = append(all, ins.SameFloor...)
	all = append(all, ins.Elevators...)
	all = append(all, ins.Stairs...)
	return all
}

func (ins Instructions) Texts() []string {
	texts := make([]string, 0, ins.Len())
	for _, i := range ins.All() {
		texts = append(texts, i.Text)
	}
	return texts
}

func pluralRooms(n int) string {
	if n == 1 {
		return "1 room"
	}
	return fmt.Sprintf("%v rooms", n)
}

// Render the instruction as a sentence
func describe(ins Instruction) string {
	var sb strings.Builder
	switch ins.Kind {
	case KindSameFloor:
		if ins.RoomsBetween == 0 {
			fmt.Fprintf(&sb, "%v is immediately to your %v", ins.Name, ins.Side)
		} else {
			fmt.Fprintf(&sb, "Go %v past %v (%v) to reach %v", ins.Side, pluralRooms(ins.RoomsBetween), strings.Join(ins.Via, ", "), ins.Name)
		}
		return sb.String()
	case KindElevator:
		fmt.Fprintf(&sb, "Take the elevator %v", ins.Name)
	case KindStairs:
		fmt.Fprintf(&sb, "Take the stairs %v", ins.Name)
	default:
		return ins.Name
	}
	if ins.Anchor != nil {
		fmt.Fprintf(&sb, " beside %v", ins.Anchor.Label())
	}
	if ins.Direction != DirectionNone {
		fmt.Fprintf(&sb, " %v to level %v", ins.Direction, ins.TargetLevel)
	}
	if ins.Destination != "" {
		if ins.RoomsBetween == 0 {
			fmt.Fprintf(&sb, ", %v is right next to it", ins.Destination)
		} else {
			fmt.Fprintf(&sb, ", %v is %v further", ins.Destination, pluralRooms(ins.RoomsBetween))
		}
	}
	return sb.String()
}
