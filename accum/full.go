package accum

import (
	"fmt"
	"math"

	"github.com/mrigankad/pathtracer/integrator"
)

// FullAccumulator is the image-wide progressive framebuffer: one radiance
// sum and one sample count per pixel, merged from completed tiles.
type FullAccumulator struct {
	Width, Height int

	radiance []integrator.Radiance4
	counts   []uint32
}

// NewFull allocates a zeroed accumulator of the given resolution.
func NewFull(width, height int) *FullAccumulator {
	return &FullAccumulator{
		Width:    width,
		Height:   height,
		radiance: make([]integrator.Radiance4, width*height),
		counts:   make([]uint32, width*height),
	}
}

// Resolution returns the accumulator's (width, height).
func (f *FullAccumulator) Resolution() (int, int) {
	return f.Width, f.Height
}

// SampleCount returns how many samples have landed on pixel i, which is
// what progressive convergence is measured against.
func (f *FullAccumulator) SampleCount(i int) uint32 {
	return f.counts[i]
}

// MergeTile adds a completed tile's samples into the global buffers.
// MergeTile panics if the tile does not fit inside the image, matching the
// spec's stated precondition.
func (f *FullAccumulator) MergeTile(tile TileAccumulator) {
	if tile.OffsetX < 0 || tile.OffsetY < 0 ||
		tile.OffsetX+tile.Width > f.Width || tile.OffsetY+tile.Height > f.Height {
		panic(fmt.Sprintf("accum: tile at (%d,%d) size %dx%d does not fit image %dx%d",
			tile.OffsetX, tile.OffsetY, tile.Width, tile.Height, f.Width, f.Height))
	}

	for ty := 0; ty < tile.Height; ty++ {
		for tx := 0; tx < tile.Width; tx++ {
			srcIdx := ty*tile.Width + tx
			dstIdx := (tile.OffsetY+ty)*f.Width + (tile.OffsetX + tx)

			src := tile.radiance[srcIdx]
			dst := f.radiance[dstIdx]
			f.radiance[dstIdx] = integrator.Radiance4{
				R: dst.R + src.R,
				G: dst.G + src.G,
				B: dst.B + src.B,
				A: dst.A + src.A,
			}
			f.counts[dstIdx] += tile.counts[srcIdx]
		}
	}
}

// PixelARGB tone-maps pixel i (Reinhard, then gamma 1/2.2) and packs it as
// 0xAARRGGBB. A pixel with zero samples maps to opaque black.
func (f *FullAccumulator) PixelARGB(i int) uint32 {
	count := f.counts[i]
	if count == 0 {
		return 0xFF000000
	}

	sum := f.radiance[i]
	n := float32(count)
	mean := integrator.Radiance4{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}

	r := tonemap(mean.R)
	g := tonemap(mean.G)
	b := tonemap(mean.B)
	a := tonemap(mean.A)

	return packARGB(a, r, g, b)
}

// tonemap applies Reinhard tone mapping followed by gamma 2.2 and clamps
// to [0, 1].
func tonemap(v float32) float32 {
	mapped := v / (v + 1)
	gammaCorrected := float32(math.Pow(float64(mapped), 1.0/2.2))
	if gammaCorrected < 0 {
		return 0
	}
	if gammaCorrected > 1 {
		return 1
	}
	return gammaCorrected
}

func packARGB(a, r, g, b float32) uint32 {
	to8 := func(v float32) uint32 { return uint32(v*255 + 0.5) }
	return to8(a)<<24 | to8(r)<<16 | to8(g)<<8 | to8(b)
}

// unpackARGB inverts packARGB, returning each channel back in [0, 1].
func unpackARGB(px uint32) (a, r, g, b float32) {
	to01 := func(v uint32) float32 { return float32(v) / 255 }
	a = to01((px >> 24) & 0xFF)
	r = to01((px >> 16) & 0xFF)
	g = to01((px >> 8) & 0xFF)
	b = to01(px & 0xFF)
	return a, r, g, b
}

// WriteToImageBuffer tone-maps every pixel into out, resizing it to
// Width*Height opaque black first if its length doesn't already match.
func (f *FullAccumulator) WriteToImageBuffer(out []uint32) []uint32 {
	n := f.Width * f.Height
	if len(out) != n {
		out = make([]uint32, n)
		for i := range out {
			out[i] = 0xFF000000
		}
	}
	for i := 0; i < n; i++ {
		out[i] = f.PixelARGB(i)
	}
	return out
}
