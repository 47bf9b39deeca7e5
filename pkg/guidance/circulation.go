package guidance

import (
	"strings"
	"unicode"

	"github.com/natevvv/campus-navigation/pkg/campus"
)

// Kind of an instruction
type Kind string

const (
	KindElevator  Kind = "elevator"
	KindStairs    Kind = "stairs"
	KindSameFloor Kind = "same-floor"
)

var elevatorTokens = map[string]bool{"ELEVATOR": true, "ELEVATORS": true, "E": true}
var stairsTokens = map[string]bool{"STAIRS": true, "STAIR": true, "STAIRCASE": true, "STAIRWAY": true, "S": true}

// Split a label into upper case tokens. Apostrophes are dropped so "Men's" stays one token
func tokenize(s string) []string {
	s = strings.NewReplacer("'", "", "’", "").Replace(s)
	return strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func hasToken(r campus.Room, tokens map[string]bool) bool {
	for _, label := range []string{r.Name, r.Description} {
		for _, token := range tokenize(label) {
			if tokens[token] {
				return true
			}
		}
	}
	return false
}

// Classify a room as vertical circulation. A room matching both classes counts as elevator
func Classify(r campus.Room) (Kind, bool) {
	if hasToken(r, elevatorTokens) {
		return KindElevator, true
	}
	if hasToken(r, stairsTokens) {
		return KindStairs, true
	}
	return "", false
}

func IsCirculation(r campus.Room) bool {
	_, ok := Classify(r)
	return ok
}

// Find the elevators and stairs of a floor. Returns their authored positions
func DetectCirculation(floor campus.Floor) (elevators, stairs []int) {
	elevators, stairs = make([]int, 0), make([]int, 0)
	for i, r := range floor.Rooms {
		switch kind, _ := Classify(r); kind {
		case KindElevator:
			elevators = append(elevators, i)
		case KindStairs:
			stairs = append(stairs, i)
		}
	}
	return elevators, stairs
}
