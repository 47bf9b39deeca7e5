package guidance

import (
	"log"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/slice"
)

// FindRoom resolves a reference to a room of the floor: exact name (case-insensitive), then id, then secondary id.
// Returns -1 if nothing matches
func FindRoom(floor campus.Floor, ref string) int {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1
	}
	for i, r := range floor.Rooms {
		if strings.EqualFold(strings.TrimSpace(r.Name), ref) {
			return i
		}
	}
	id := campus.NormalizeID(ref)
	for i, r := range floor.Rooms {
		if r.ID != "" && r.ID == id {
			return i
		}
	}
	for i, r := range floor.Rooms {
		if r.RecordID != "" && r.RecordID == id {
			return i
		}
	}
	return -1
}

// Find the authored position of the given room on the floor, -1 if the room is not on the floor
func IndexOfRoom(floor campus.Floor, room campus.Room) int {
	for _, ref := range []string{string(room.ID), string(room.RecordID)} {
		if ref == "" {
			continue
		}
		for i, r := range floor.Rooms {
			if (r.ID != "" && string(r.ID) == ref) || (r.RecordID != "" && string(r.RecordID) == ref) {
				return i
			}
		}
	}
	for i, r := range floor.Rooms {
		if strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(room.Name)) {
			return i
		}
	}
	return -1
}

// Determine the rooms the circulation room at position idx is described as being beside.
// Explicitly authored beside rooms win; unresolved entries are dropped with a warning.
// Without any resolved entry, the first room of the floor which is neither elevator nor stairs is used.
// Returns nil if no anchor can be found.
func (gen *Generator) ResolveAnchors(floor campus.Floor, idx int) []int {
	if idx < 0 || idx >= len(floor.Rooms) {
		return nil
	}
	room := floor.Rooms[idx]

	anchors := make([]int, 0, len(room.BesideRooms))
	for _, ref := range room.BesideRooms {
		i := FindRoom(floor, ref)
		if i < 0 || i == idx {
			log.Printf("Level %v: cannot resolve room %q beside %v, ignoring it\n", floor.Level, ref, room.Name)
			continue
		}
		if !slice.Contains(anchors, i) {
			anchors = append(anchors, i)
		}
	}
	if len(anchors) > 0 {
		return anchors
	}

	for i, r := range floor.Rooms {
		if !IsCirculation(r) {
			if gen.debugLevel >= 1 {
				log.Printf("Level %v: no authored room beside %v, falling back to %v\n", floor.Level, room.Name, r.Name)
			}
			return []int{i}
		}
	}
	return nil
}
