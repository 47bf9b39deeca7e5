package pbf

import (
	"io"
	"os"
	"runtime"

	"github.com/natevvv/campus-navigation/pkg/walkway"
	"github.com/qedus/osmpbf"
)

// Importer reads the walkable ways of an OSM PBF extract
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

func (im *Importer) Import() error {
	file, err := os.Open(im.filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return im.ImportReader(file)
}

func (im *Importer) ImportReader(r io.Reader) error {
	decoder := osmpbf.NewDecoder(r)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	err := decoder.Start(runtime.GOMAXPROCS(-1))
	if err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		switch v := v.(type) {
		case *osmpbf.Node:
			im.network.AddNode(v.ID, v.Lat, v.Lon, v.Tags)
		case *osmpbf.Way:
			if im.network.AddWay(v.ID, v.NodeIDs, v.Tags) {
				im.ways++
			}
		}
	}

	im.network.Merge()
	return nil
}

func (im *Importer) Network() *walkway.Network {
	return im.network
}

// Number of ways used
func (im *Importer) WayCount() int {
	return im.ways
}
