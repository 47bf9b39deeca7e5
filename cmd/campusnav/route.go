package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/routing"
	"github.com/natevvv/campus-navigation/pkg/server/openapi_server"
	"github.com/spf13/cobra"
)

var (
	routeRoom string
	routeJson bool
)

var routeCmd = &cobra.Command{
	Use:   "route FROM TO",
	Short: "Compute a route between two points or rooms",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeRoom, "room", "", "Destination room inside the destination building")
	routeCmd.Flags().BoolVar(&routeJson, "json", false, "Print the route as json")
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	router, err := newRouter()
	if err != nil {
		return err
	}
	request := routing.RouteRequest{From: args[0], To: args[1], DestinationRoom: routeRoom}
	route := <-router.ComputeRouteDeferred(cmd.Context(), request)
	if route.Err != nil {
		return route.Err
	}

	if routeJson {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(openapi_server.RouteResult{
			Origin:       openapi_server.PointFromCampus(route.Origin),
			Destination:  openapi_server.PointFromCampus(route.Destination),
			Reachable:    route.Exists,
			Path:         openapi_server.Path{Length: route.Length, Waypoints: openapi_server.PointsFromCampus(route.Waypoints), Visible: openapi_server.PointsFromCampus(route.Visible)},
			Instructions: route.Instructions,
		})
	}

	stops := make([]string, 0, len(route.Visible))
	for _, p := range route.Visible {
		if p.Title != "" {
			stops = append(stops, p.Title)
		} else {
			stops = append(stops, p.ID.String())
		}
	}
	fmt.Printf("%v\n", strings.Join(stops, " -> "))
	fmt.Printf("Length: %.1f (%v points, %v waypoints)\n", route.Length, len(route.Visible), len(route.Waypoints)-len(route.Visible))
	for _, text := range route.Instructions.Texts() {
		fmt.Printf("- %v\n", text)
	}
	return nil
}
