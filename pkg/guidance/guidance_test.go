package guidance

import (
	"testing"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/stretchr/testify/require"
)

func orderHint(i int) *int { return &i }

func names(floor campus.Floor, positions []int) []string {
	result := make([]string, 0, len(positions))
	for _, p := range positions {
		result = append(result, floor.Rooms[p].Name)
	}
	return result
}

// rooms A, E1, B, C without explicit order; E1 is beside B
func elevatorFloor() campus.Floor {
	return campus.Floor{
		Level: 1,
		Rooms: []campus.Room{
			{Name: "A", Description: "Lecture hall"},
			{Name: "E1", Description: "ELEVATOR", BesideRooms: []string{"B"}},
			{Name: "B", Description: "Library"},
			{Name: "C", Description: "Cafeteria"},
		},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		room campus.Room
		kind Kind
		ok   bool
	}{
		{campus.Room{Name: "E1", Description: "ELEVATOR"}, KindElevator, true},
		{campus.Room{Name: "Lift", Description: "Elevators north"}, KindElevator, true},
		{campus.Room{Name: "E"}, KindElevator, true},
		{campus.Room{Name: "e-2"}, KindElevator, true},
		{campus.Room{Name: "S1", Description: "Main staircase"}, KindStairs, true},
		{campus.Room{Name: "s"}, KindStairs, true},
		{campus.Room{Name: "Stairs/West"}, KindStairs, true},
		{campus.Room{Name: "E101", Description: "Seminar room"}, "", false},
		{campus.Room{Name: "Men's room"}, "", false},
		{campus.Room{Name: "Elevation lab"}, "", false},
		{campus.Room{Name: "Stair and elevator core"}, KindElevator, true},
	}
	for _, test := range tests {
		kind, ok := Classify(test.room)
		require.Equal(t, test.ok, ok, test.room.Name)
		require.Equal(t, test.kind, kind, test.room.Name)
	}
}

func TestDetectCirculation(t *testing.T) {
	floor := elevatorFloor()
	floor.Rooms = append(floor.Rooms, campus.Room{Name: "S1", Description: "STAIRS"})
	elevators, stairs := DetectCirculation(floor)
	require.Equal(t, []int{1}, elevators)
	require.Equal(t, []int{4}, stairs)

	elevators, stairs = DetectCirculation(campus.Floor{})
	require.Empty(t, elevators)
	require.Empty(t, stairs)
}

func TestElevatorAnchoredAtAuthoredRoom(t *testing.T) {
	ins := GenerateRouteInstructions(elevatorFloor(), nil)
	require.Len(t, ins.Elevators, 1)
	require.Empty(t, ins.Stairs)
	require.NotNil(t, ins.Elevators[0].Anchor)
	require.Equal(t, "B", ins.Elevators[0].Anchor.Name)
	require.Equal(t, "Take the elevator E1 beside Library", ins.Elevators[0].Text)
}

func TestInterRoomCountToDestination(t *testing.T) {
	floor := elevatorFloor()
	destination := floor.Rooms[3]
	ins := GenerateRouteInstructions(floor, &destination)
	require.Len(t, ins.Elevators, 1)
	require.Equal(t, "B", ins.Elevators[0].Anchor.Name)
	require.Equal(t, 1, ins.Elevators[0].RoomsBetween)
	require.Equal(t, "Cafeteria", ins.Elevators[0].Destination)
	require.Equal(t, "Take the elevator E1 beside Library, Cafeteria is 1 room further", ins.Elevators[0].Text)
}

func TestAnchorResolution(t *testing.T) {
	gen := NewGenerator()
	floor := campus.Floor{
		Rooms: []campus.Room{
			{Name: "Stairs", BesideRooms: []string{"ghost", "lab", "17", "rec-9", "Lab"}},
			{Name: "Lab"},
			{Name: "Office", ID: "17"},
			{Name: "Storage", RecordID: "rec-9"},
		},
	}
	require.Equal(t, []int{1, 2, 3}, gen.ResolveAnchors(floor, 0))

	// nothing resolves: first room which is neither elevator nor stairs
	floor.Rooms[0].BesideRooms = []string{"ghost"}
	floor.Rooms = append([]campus.Room{{Name: "E2", Description: "Elevator"}}, floor.Rooms...)
	require.Equal(t, []int{2}, gen.ResolveAnchors(floor, 1))

	// a room is never beside itself
	floor.Rooms[1].BesideRooms = []string{"Stairs"}
	require.Equal(t, []int{2}, gen.ResolveAnchors(floor, 1))

	require.Nil(t, gen.ResolveAnchors(floor, 42))
}

func TestAnchorFallback(t *testing.T) {
	floor := elevatorFloor()
	floor.Rooms[1].BesideRooms = nil
	ins := GenerateRouteInstructions(floor, nil)
	require.Equal(t, "A", ins.Elevators[0].Anchor.Name)
}

func TestMissingAnchorDegrades(t *testing.T) {
	floor := campus.Floor{
		Level: 2,
		Rooms: []campus.Room{
			{Name: "E1", Description: "ELEVATOR", BesideRooms: []string{"nowhere"}},
			{Name: "S1", Description: "STAIRS"},
		},
	}
	var ins Instructions
	require.NotPanics(t, func() { ins = GenerateRouteInstructions(floor, nil) })
	require.Len(t, ins.Elevators, 1)
	require.Len(t, ins.Stairs, 1)
	require.Nil(t, ins.Elevators[0].Anchor)
	require.Nil(t, ins.Stairs[0].Anchor)
	require.Equal(t, "Take the elevator E1", ins.Elevators[0].Text)
}

func TestSortedRooms(t *testing.T) {
	floor := campus.Floor{
		Rooms: []campus.Room{
			{Name: "x"},
			{Name: "c", Order: orderHint(3)},
			{Name: "y"},
			{Name: "a", Order: orderHint(1)},
			{Name: "b", Order: orderHint(3)},
		},
	}
	require.Equal(t, []string{"a", "c", "b", "x", "y"}, names(floor, SortedRooms(floor)))

	require.Equal(t, 1, RoomsBetween(floor, 3, 4))
	require.Equal(t, 2, RoomsBetween(floor, 3, 0))
	require.Equal(t, 2, RoomsBetween(floor, 0, 3))
	require.Equal(t, 0, RoomsBetween(floor, 3, 1))
	require.Equal(t, 0, RoomsBetween(floor, 1, 1))
	require.Equal(t, 0, RoomsBetween(floor, 1, 9))
}

func orderedFloor() campus.Floor {
	return campus.Floor{
		Level: 0,
		Rooms: []campus.Room{
			{Name: "R6", Description: "Workshop", Order: orderHint(6)},
			{Name: "R1", Description: "Entrance", Order: orderHint(1)},
			{Name: "R4", Description: "Lab 4", Order: orderHint(4)},
			{Name: "R2", Description: "Office", Order: orderHint(2)},
			{Name: "R5", Description: "Lab 5", Order: orderHint(5)},
			{Name: "R3", Description: "Lab 3", Order: orderHint(3)},
		},
	}
}

func TestSameFloorGuidance(t *testing.T) {
	floor := orderedFloor()
	gen := NewGenerator()

	// from R2 to R6: R3, R4 and R5 are in between
	ins := gen.SameFloorGuidance(floor, 3, 0)
	require.Len(t, ins, 1)
	require.Equal(t, SideRight, ins[0].Side)
	require.Equal(t, 3, ins[0].RoomsBetween)
	require.Equal(t, []string{"Lab 3", "Lab 4", "Lab 5"}, ins[0].Via)
	require.Equal(t, "Go right past 3 rooms (Lab 3, Lab 4, Lab 5) to reach Workshop", ins[0].Text)

	// and back
	ins = gen.SameFloorGuidance(floor, 0, 3)
	require.Equal(t, SideLeft, ins[0].Side)
	require.Equal(t, []string{"Lab 5", "Lab 4", "Lab 3"}, ins[0].Via)

	ins = gen.SameFloorGuidance(floor, 2, 4)
	require.Equal(t, 0, ins[0].RoomsBetween)
	require.Empty(t, ins[0].Via)
	require.Equal(t, "Lab 5 is immediately to your right", ins[0].Text)

	require.Empty(t, gen.SameFloorGuidance(floor, 2, 2))
	require.Empty(t, gen.SameFloorGuidance(floor, -1, 2))
}

func building() campus.Point {
	ground := campus.Floor{
		Level: 0,
		Rooms: []campus.Room{
			{Name: "Foyer"},
			{Name: "E1", Description: "Elevator", BesideRooms: []string{"Foyer"}},
			{Name: "S1", Description: "Stairs", BesideRooms: []string{"Cloakroom"}},
			{Name: "Cloakroom"},
		},
	}
	upper := campus.Floor{
		Level: 2,
		Rooms: []campus.Room{
			{Name: "E1", Description: "Elevator"},
			{Name: "201", ID: "201"},
			{Name: "202", ID: "202"},
			{Name: "203", ID: "203", Description: "Dean"},
		},
	}
	return campus.Point{ID: "main", Title: "Main building", Floors: []campus.Floor{upper, ground}}
}

func locate(t *testing.T, b campus.Point, level int, name string) *campus.RoomLocation {
	t.Helper()
	floor, ok := b.Floor(level)
	require.True(t, ok)
	for i, r := range floor.Rooms {
		if r.Name == name {
			return &campus.RoomLocation{Building: b.ID, Level: level, Floor: floor, Room: r, Index: i}
		}
	}
	t.Fatalf("Room %v not on level %v\n", name, level)
	return nil
}

func TestPlanEnteringBuilding(t *testing.T) {
	b := building()
	ins := Plan(PlanRequest{Building: b, Destination: locate(t, b, 2, "203")})

	require.Len(t, ins.Elevators, 1)
	require.Len(t, ins.Stairs, 1)
	require.Empty(t, ins.SameFloor)

	elevator := ins.Elevators[0]
	require.Equal(t, 0, elevator.Level)
	require.Equal(t, 2, elevator.TargetLevel)
	require.Equal(t, DirectionUp, elevator.Direction)
	require.Equal(t, "Foyer", elevator.Anchor.Name)
	// counted on level 2 from the elevator of the same name
	require.Equal(t, 2, elevator.RoomsBetween)
	require.Equal(t, "Take the elevator E1 beside Foyer up to level 2, Dean is 2 rooms further", elevator.Text)

	// no stairs on level 2, no count
	require.Equal(t, "Cloakroom", ins.Stairs[0].Anchor.Name)
	require.Empty(t, ins.Stairs[0].Destination)
	require.Equal(t, 0, ins.Stairs[0].RoomsBetween)
}

func TestPlanWithinBuilding(t *testing.T) {
	b := building()

	// another level: circulation of the origin floor
	ins := Plan(PlanRequest{Building: b, Origin: locate(t, b, 2, "201"), Destination: locate(t, b, 0, "Cloakroom")})
	require.Len(t, ins.Elevators, 1)
	require.Equal(t, 2, ins.Elevators[0].Level)
	require.Equal(t, DirectionDown, ins.Elevators[0].Direction)
	require.Equal(t, "201", ins.Elevators[0].Anchor.Name, "first ordinary room of level 2")
	require.Equal(t, 0, ins.Elevators[0].TargetLevel)
	require.Equal(t, 1, ins.Elevators[0].RoomsBetween)

	// same level: rooms in between
	ins = Plan(PlanRequest{Building: b, Origin: locate(t, b, 2, "203"), Destination: locate(t, b, 2, "201")})
	require.Empty(t, ins.Elevators)
	require.Len(t, ins.SameFloor, 1)
	require.Equal(t, SideLeft, ins.SameFloor[0].Side)
	require.Equal(t, []string{"202"}, ins.SameFloor[0].Via)
}

func TestPlanWithoutDestination(t *testing.T) {
	ins := Plan(PlanRequest{Building: building()})
	require.Equal(t, 0, ins.Len())
	require.NotNil(t, ins.Elevators)
	require.Empty(t, ins.Texts())
}
