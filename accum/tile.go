// Package accum implements the two-level progressive framebuffer: a
// per-tile accumulator owned by a single worker, and a full-image
// accumulator that merges tiles under a write lock and tone-maps the
// result into an 8-bit ARGB buffer.
package accum

import "github.com/mrigankad/pathtracer/integrator"

// TileAccumulator owns radiance and sample-count buffers for a rectangular
// sub-region of the image. It has a single owner (one worker, one job) and
// needs no internal locking.
type TileAccumulator struct {
	OffsetX, OffsetY int
	Width, Height    int

	radiance []integrator.Radiance4
	counts   []uint32
}

// NewTile allocates a zeroed tile at the given offset and size.
func NewTile(offsetX, offsetY, width, height int) TileAccumulator {
	return TileAccumulator{
		OffsetX:  offsetX,
		OffsetY:  offsetY,
		Width:    width,
		Height:   height,
		radiance: make([]integrator.Radiance4, width*height),
		counts:   make([]uint32, width*height),
	}
}

// Accumulate adds one sample at local coordinates (localX, localY). Bounds
// checks are debug-only per spec.md §4.6: a release build trusts callers to
// stay inside [0, Width) x [0, Height).
func (t *TileAccumulator) Accumulate(localX, localY int, sample integrator.Radiance4) {
	if debugBoundsChecks {
		if localX < 0 || localX >= t.Width || localY < 0 || localY >= t.Height {
			panic("accum: Accumulate out of tile bounds")
		}
	}
	i := localY*t.Width + localX
	r := t.radiance[i]
	t.radiance[i] = integrator.Radiance4{
		R: r.R + sample.R,
		G: r.G + sample.G,
		B: r.B + sample.B,
		A: r.A + sample.A,
	}
	t.counts[i]++
}

// debugBoundsChecks gates the Accumulate bounds check. Left on by default;
// a release build driven by the renderer's worker pool can turn it off once
// tile geometry is trusted.
var debugBoundsChecks = true
