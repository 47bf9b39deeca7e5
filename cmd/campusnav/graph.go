package main

import (
	"fmt"
	"log"
	"os"

	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/spf13/cobra"
)

var graphOutput string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the navigation graph of the registry and write it in fmi format",
	RunE:  runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	snapshot, err := loadSnapshot()
	if err != nil {
		return err
	}

	builder := graph.NewBuilder()
	builder.SetDebugLevel(cfg.Debug.Graph)
	g := builder.Build(snapshot.Points())

	log.Printf("Graph has %v nodes and %v arcs\n", g.NodeCount(), g.ArcCount())
	if builder.SkippedNeighbors() > 0 {
		log.Printf("Skipped %v neighbors without point\n", builder.SkippedNeighbors())
	}
	if !graph.IsSymmetric(g) {
		return fmt.Errorf("graph is not symmetric")
	}

	if graphOutput == "" {
		return graph.WriteFmi(g, os.Stdout)
	}
	if err := graph.WriteFmiFile(g, graphOutput); err != nil {
		return err
	}
	log.Printf("Graph written to %v\n", graphOutput)
	return nil
}
