package topology

import "math"

// Cube is a hexagonal coordinate in cube form; X+Y+Z is always 0.
type Cube struct {
	X, Y, Z int
}

// CubeDistance is the hex step distance between a and b.
func CubeDistance(a, b Cube) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z))
}

// AxialToCube converts axial q/r to cube form.
func AxialToCube(c Coord) Cube {
	return Cube{X: c.Q, Y: -c.Q - c.R, Z: c.R}
}

// CubeToAxial drops the redundant Y component.
func CubeToAxial(c Cube) Coord {
	return Coord{Q: c.X, R: c.Z}
}

// OffsetToCube converts an offset coordinate to cube form. even selects the
// even-offset variant; o selects whether columns (flat) or rows (pointy) are
// shifted.
func OffsetToCube(c Coord, even bool, o Orientation) Cube {
	var x, z int
	if o == FlatTop {
		x = c.Q
		if even {
			z = c.R - (c.Q+(c.Q&1))/2
		} else {
			z = c.R - (c.Q-(c.Q&1))/2
		}
	} else {
		z = c.R
		if even {
			x = c.Q - (c.R+(c.R&1))/2
		} else {
			x = c.Q - (c.R-(c.R&1))/2
		}
	}
	return Cube{X: x, Y: -x - z, Z: z}
}

// RoundCube rounds fractional cube components to the nearest hex. The
// component with the largest rounding error is recomputed from the other two
// so that X+Y+Z == 0 holds.
func RoundCube(x, y, z float64) Cube {
	rx := math.RoundToEven(x)
	ry := math.RoundToEven(y)
	rz := math.RoundToEven(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// cubeSpan calls fn for every cube delta within radius of the origin,
// excluding the origin itself.
func cubeSpan(radius int, fn func(x, z int)) {
	for x := -radius; x <= radius; x++ {
		for y := max(-radius, -x-radius); y <= min(radius, -x+radius); y++ {
			z := -x - y
			if x == 0 && z == 0 {
				continue
			}
			fn(x, z)
		}
	}
}
