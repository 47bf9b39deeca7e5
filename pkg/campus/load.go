package campus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown registry format")

// Read a JSON array of points
func LoadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return points, nil
}

// Read a YAML sequence of points
func LoadPointsYAML(r io.Reader) ([]Point, error) {
	var points []Point
	if err := yaml.NewDecoder(r).Decode(&points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return points, nil
}

// Load a snapshot from a JSON or YAML file, chosen by file extension
func LoadSnapshotFile(filename string) (*Snapshot, error) {
	var load func(io.Reader) ([]Point, error)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		load = LoadPoints
	case ".yaml", ".yml":
		load = LoadPointsYAML
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnknownFormat)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	points, err := load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return NewSnapshot(points), nil
}

// Write the points as indented JSON array
func WritePoints(w io.Writer, points []Point) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(points)
}
