package osmxml

import (
	"context"
	"io"
	"os"

	"github.com/natevvv/campus-navigation/pkg/walkway"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// Importer reads the walkable ways of an OSM XML document
type Importer struct {
	filename string
	network  *walkway.Network
	ways     int
}

func NewImporter(filename string) *Importer {
	return &Importer{
		filename: filename,
		network:  walkway.NewNetwork(),
	}
}

func (im *Importer) Import(ctx context.Context) error {
	file, err := os.Open(im.filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return im.ImportReader(ctx, file)
}

func (im *Importer) ImportReader(ctx context.Context, r io.Reader) error {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			im.network.AddNode(int64(o.ID), o.Lat, o.Lon, tagMap(o.Tags))
		case *osm.Way:
			nodeIDs := make([]int64, 0, len(o.Nodes))
			for _, wn := range o.Nodes {
				nodeIDs = append(nodeIDs, int64(wn.ID))
			}
			if im.network.AddWay(int64(o.ID), nodeIDs, tagMap(o.Tags)) {
				im.ways++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	im.network.Merge()
	return nil
}

func tagMap(tags osm.Tags) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}

func (im *Importer) Network() *walkway.Network {
	return im.network
}

// Number of ways used
func (im *Importer) WayCount() int {
	return im.ways
}
