// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/campus-navigation/pkg/guidance"

type Path struct {
	Length    float64 `json:"length"`
	Waypoints []Point `json:"waypoints"`
	Visible   []Point `json:"visible"`
}

type RouteResult struct {
	Origin       Point                 `json:"origin"`
	Destination  Point                 `json:"destination"`
	Reachable    bool                  `json:"reachable"`
	Path         Path                  `json:"path"`
	Instructions guidance.Instructions `json:"instructions"`
	Error        string                `json:"error,omitempty"`
}
