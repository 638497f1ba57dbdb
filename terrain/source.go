package terrain

import (
	"errors"
	"fmt"
	"math/rand/v2"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

// ErrUnknownMode indicates a height mode name outside the known set.
var ErrUnknownMode = errors.New("terrain: unknown height mode")

// Mode selects a height source.
type Mode string

const (
	// ModeFlat keeps every node at MinHeight.
	ModeFlat Mode = "flat"
	// ModeRandom draws uniform layers.
	ModeRandom Mode = "random"
	// ModeNoise samples fractal simplex noise.
	ModeNoise Mode = "noise"
)

// New returns the height source for mode. seed 0 picks a random seed.
func New(mode Mode, seed int64) (grid.HeightSource, error) {
	switch mode {
	case ModeFlat, "":
		return Flat(), nil
	case ModeRandom:
		return Random(seed), nil
	case ModeNoise:
		return NewNoise(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// Flat returns a source that keeps every node at MinHeight.
func Flat() grid.HeightSource {
	return grid.HeightFunc(func(topology.Coord, float64, float64) float64 { return 0 })
}

// Random returns a source of uniform samples. Each sample is drawn from a
// generator keyed by the seed and the node coordinate, so a source can be
// reused across Create calls and always yields the same heights.
func Random(seed int64) grid.HeightSource {
	s := uint64(pickSeed(seed))
	return grid.HeightFunc(func(c topology.Coord, _, _ float64) float64 {
		return rand.New(rand.NewPCG(s, uint64(uint32(c.Q))<<32|uint64(uint32(c.R)))).Float64()
	})
}

// Noise samples layered simplex noise at a node's local ground position.
type Noise struct {
	Octaves     int
	Frequency   float64
	Persistence float64
	noise       opensimplex.Noise
}

// NewNoise returns a 4-octave source with frequency 0.08 and persistence 0.5.
func NewNoise(seed int64) *Noise {
	return &Noise{
		Octaves:     4,
		Frequency:   0.08,
		Persistence: 0.5,
		noise:       opensimplex.NewNormalized(pickSeed(seed)),
	}
}

// Height implements grid.HeightSource.
func (n *Noise) Height(_ topology.Coord, x, z float64) float64 {
	return octaveNoise(n.noise, x, z, n.Octaves, n.Frequency, n.Persistence)
}

// octaveNoise generates fractal noise by layering multiple frequencies.
// With normalized noise the result stays in [0, 1).
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < max(octaves, 1); i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func pickSeed(seed int64) int64 {
	if seed == 0 {
		return rand.Int64()
	}
	return seed
}
