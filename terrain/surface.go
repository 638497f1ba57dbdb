package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseSurface is a simplex relief: y = Base + Amplitude·noise(x, z).
// Points where y falls below WaterLevel are misses (no ground to stand on).
type NoiseSurface struct {
	Base        float64
	Amplitude   float64
	WaterLevel  float64
	Octaves     int
	Frequency   float64
	Persistence float64
	noise       opensimplex.Noise
}

// NewNoiseSurface returns a relief between 0 and amplitude with no water.
func NewNoiseSurface(seed int64, amplitude float64) *NoiseSurface {
	return &NoiseSurface{
		Amplitude:   amplitude,
		WaterLevel:  math.Inf(-1),
		Octaves:     4,
		Frequency:   0.08,
		Persistence: 0.5,
		noise:       opensimplex.NewNormalized(pickSeed(seed)),
	}
}

// Probe implements grid.Surface.
func (s *NoiseSurface) Probe(x, z, top, bottom float64) (float64, bool) {
	y := s.Base + s.Amplitude*octaveNoise(s.noise, x, z, s.Octaves, s.Frequency, s.Persistence)
	if y < s.WaterLevel {
		return 0, false
	}
	return inSpan(y, top, bottom)
}

// Heightmap is a regular field of world heights on the XZ plane. Cell (i, j)
// covers x in [X0 + i·Cell, X0 + (i+1)·Cell) and likewise for z with j.
// NaN samples are holes.
type Heightmap struct {
	X0, Z0 float64
	Cell   float64
	// Rows[j][i] is the height of column i in row j.
	Rows [][]float64
}

// Probe implements grid.Surface with nearest-cell lookup. Positions outside
// the field miss.
func (h *Heightmap) Probe(x, z, top, bottom float64) (float64, bool) {
	if h.Cell <= 0 {
		return 0, false
	}
	i := int(math.Floor((x - h.X0) / h.Cell))
	j := int(math.Floor((z - h.Z0) / h.Cell))
	if j < 0 || j >= len(h.Rows) || i < 0 || i >= len(h.Rows[j]) {
		return 0, false
	}
	y := h.Rows[j][i]
	if math.IsNaN(y) {
		return 0, false
	}
	return inSpan(y, top, bottom)
}

func inSpan(y, top, bottom float64) (float64, bool) {
	if y > top || y < bottom {
		return 0, false
	}
	return y, true
}
