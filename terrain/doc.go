// Package terrain provides height sources for grid creation and surfaces for
// grid.AdjustToSurface.
//
// Height sources return samples in [0, 1] that the grid maps onto its layer
// range:
//
//	Flat     – every node at MinHeight.
//	Random   – uniform layers from a seeded generator, in grid array order.
//	Noise    – fractal simplex noise over the node's local position.
//
// Surfaces answer vertical probes in world space:
//
//	NoiseSurface – simplex relief with an optional water level that counts as a miss.
//	Heightmap    – a sampled height field; NaN cells are holes.
package terrain
