// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/campus-navigation/pkg/campus"

type Point struct {
	Id         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Title      string  `json:"title,omitempty"`
	IsWaypoint bool    `json:"isWaypoint"`
	IsBuilding bool    `json:"isBuilding"`
}

func PointFromCampus(p campus.Point) Point {
	return Point{
		Id:         p.ID.String(),
		X:          p.X,
		Y:          p.Y,
		Title:      p.Title,
		IsWaypoint: p.IsWaypoint,
		IsBuilding: p.IsBuilding(),
	}
}

func PointsFromCampus(points []campus.Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, PointFromCampus(p))
	}
	return result
}
