package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natevvv/campus-navigation/internal/osmxml"
	"github.com/natevvv/campus-navigation/internal/pbf"
	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/walkway"
	"github.com/spf13/cobra"
)

var importOutput string

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Create a point registry from an OSM extract (.osm, .xml or .pbf)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "campus.json", "Output registry file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]
	start := time.Now()

	var network *walkway.Network
	var ways int
	if strings.HasSuffix(strings.ToLower(filename), ".pbf") {
		importer := pbf.NewImporter(filename)
		if err := importer.Import(); err != nil {
			return err
		}
		network, ways = importer.Network(), importer.WayCount()
	} else {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".osm", ".xml":
		default:
			return fmt.Errorf("%w: %v", campus.ErrUnknownFormat, filename)
		}
		importer := osmxml.NewImporter(filename)
		if err := importer.Import(cmd.Context()); err != nil {
			return err
		}
		network, ways = importer.Network(), importer.WayCount()
	}
	log.Printf("[TIME-Import] = %s\n", time.Since(start))
	log.Printf("%v ways, %v segments after merging, %v buildings\n", ways, len(network.Segments), len(network.Buildings))

	start = time.Now()
	points := network.Points()

	file, err := os.Create(importOutput)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := campus.WritePoints(file, points); err != nil {
		return err
	}
	log.Printf("[TIME-Export] = %s\n", time.Since(start))
	log.Printf("%v points written to %v\n", len(points), importOutput)
	return nil
}
