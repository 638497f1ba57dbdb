// Package config loads mapnav settings from HJSON files.
//
// A file may set any subset of the sections below; absent keys keep the
// values of Default:
//
//	{
//	  grid: {
//	    kind: hex-axial          // square | hex-axial | hex-odd-offset | hex-even-offset
//	    orientation: flat        // flat | pointy
//	    width: 15
//	    height: 15
//	    node_size: 1
//	    height_step: 0.15
//	    min_height: 0
//	    max_height: 5
//	    diagonal: false
//	    origin: [0, 0, 0]
//	  }
//	  terrain: { mode: noise, seed: 42 }
//	  store: { path: mapnav.db }
//	  log: { level: info }
//	}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/terrain"
	"github.com/katalvlaran/mapnav/topology"
)

// ErrBadOrigin indicates an origin that is not a three-element array.
var ErrBadOrigin = errors.New("config: origin must have three components")

// File is the decoded content of a configuration file.
type File struct {
	Grid    Grid    `json:"grid"`
	Terrain Terrain `json:"terrain"`
	Store   Store   `json:"store"`
	Log     Log     `json:"log"`
}

// Grid mirrors grid.Config with textual enums.
type Grid struct {
	Kind        string    `json:"kind"`
	Orientation string    `json:"orientation"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	NodeSize    float64   `json:"node_size"`
	HeightStep  float64   `json:"height_step"`
	MinHeight   int       `json:"min_height"`
	MaxHeight   int       `json:"max_height"`
	Diagonal    bool      `json:"diagonal"`
	Origin      []float64 `json:"origin"`
}

// Terrain selects the height source used on creation.
type Terrain struct {
	Mode string `json:"mode"`
	Seed int64  `json:"seed"`
}

// Store locates the snapshot database.
type Store struct {
	Path string `json:"path"`
}

// Log sets the minimum log level.
type Log struct {
	Level string `json:"level"`
}

// Default returns the settings used when no file is given.
func Default() *File {
	c := grid.DefaultConfig()
	return &File{
		Grid: Grid{
			Kind:        c.Kind.String(),
			Orientation: c.Orientation.String(),
			Width:       c.Width,
			Height:      c.Height,
			NodeSize:    c.NodeSize,
			HeightStep:  c.HeightStep,
			MinHeight:   c.MinHeight,
			MaxHeight:   c.MaxHeight,
			Diagonal:    c.Diagonal,
			Origin:      []float64{0, 0, 0},
		},
		Terrain: Terrain{Mode: string(terrain.ModeFlat)},
		Store:   Store{Path: "mapnav.db"},
		Log:     Log{Level: "info"},
	}
}

// Load reads the HJSON file at path on top of Default.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes HJSON data on top of Default.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := hjson.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse hjson: %w", err)
	}
	return f, nil
}

// GridConfig converts the grid section into a grid.Config.
func (f *File) GridConfig() (grid.Config, error) {
	kind, err := topology.ParseKind(f.Grid.Kind)
	if err != nil {
		return grid.Config{}, err
	}
	orient, err := topology.ParseOrientation(f.Grid.Orientation)
	if err != nil {
		return grid.Config{}, err
	}
	var origin topology.Vec3
	switch len(f.Grid.Origin) {
	case 0:
	case 3:
		origin = topology.Vec3{X: f.Grid.Origin[0], Y: f.Grid.Origin[1], Z: f.Grid.Origin[2]}
	default:
		return grid.Config{}, fmt.Errorf("%w: got %d", ErrBadOrigin, len(f.Grid.Origin))
	}
	return grid.Config{
		Kind:        kind,
		Orientation: orient,
		Width:       f.Grid.Width,
		Height:      f.Grid.Height,
		NodeSize:    f.Grid.NodeSize,
		HeightStep:  f.Grid.HeightStep,
		MinHeight:   f.Grid.MinHeight,
		MaxHeight:   f.Grid.MaxHeight,
		Diagonal:    f.Grid.Diagonal,
		Origin:      origin,
	}, nil
}

// HeightSource builds the terrain source named by the terrain section.
func (f *File) HeightSource() (grid.HeightSource, error) {
	return terrain.New(terrain.Mode(f.Terrain.Mode), f.Terrain.Seed)
}

// LogLevel parses the log level; unknown names fall back to info.
func (f *File) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(f.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
