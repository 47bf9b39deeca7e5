package guidance

import (
	"sort"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

// Authored positions of the floor's rooms in walking order.
// Rooms are ordered by their order field, rooms without one come last; ties keep the authored order
func SortedRooms(floor campus.Floor) []int {
	sorted := make([]int, len(floor.Rooms))
	for i := range sorted {
		sorted[i] = i
	}
	sort.SliceStable(sorted, func(a, b int) bool {
		ra, rb := floor.Rooms[sorted[a]], floor.Rooms[sorted[b]]
		switch {
		case ra.Order == nil:
			return false
		case rb.Order == nil:
			return true
		default:
			return *ra.Order < *rb.Order
		}
	})
	return sorted
}

// Position of each authored room index within the walking order
func sortedPositions(floor campus.Floor) []int {
	positions := make([]int, len(floor.Rooms))
	for pos, i := range SortedRooms(floor) {
		positions[i] = pos
	}
	return positions
}

// Number of rooms strictly between the rooms at authored positions a and b in walking order.
// Returns 0 for unknown, equal or neighboring rooms
func RoomsBetween(floor campus.Floor, a, b int) int {
	if a < 0 || b < 0 || a >= len(floor.Rooms) || b >= len(floor.Rooms) {
		return 0
	}
	positions := sortedPositions(floor)
	between := positions[a] - positions[b]
	if between < 0 {
		between = -between
	}
	between--
	if between < 0 {
		return 0
	}
	return between
}
