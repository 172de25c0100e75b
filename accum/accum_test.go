package accum

import (
	"testing"

	"github.com/mrigankad/pathtracer/integrator"
	"github.com/stretchr/testify/assert"
)

func TestTileAccumulateSumsAndCounts(t *testing.T) {
	tile := NewTile(0, 0, 4, 4)
	tile.Accumulate(1, 1, integrator.Radiance4{R: 1, G: 2, B: 3, A: 1})
	tile.Accumulate(1, 1, integrator.Radiance4{R: 1, G: 2, B: 3, A: 1})

	idx := 1*4 + 1
	assert.Equal(t, float32(2), tile.radiance[idx].R)
	assert.Equal(t, float32(4), tile.radiance[idx].G)
	assert.Equal(t, uint32(2), tile.counts[idx])
}

// TestMergeTileIsCommutative is property #2: merging tiles in either order
// produces the same full accumulator state.
func TestMergeTileIsCommutative(t *testing.T) {
	mkTile := func(val float32) TileAccumulator {
		tile := NewTile(0, 0, 2, 2)
		tile.Accumulate(0, 0, integrator.Radiance4{R: val, G: val, B: val, A: 1})
		return tile
	}

	a, b := mkTile(1), mkTile(3)

	order1 := NewFull(2, 2)
	order1.MergeTile(a)
	order1.MergeTile(b)

	order2 := NewFull(2, 2)
	order2.MergeTile(b)
	order2.MergeTile(a)

	assert.Equal(t, order1.radiance, order2.radiance)
	assert.Equal(t, order1.counts, order2.counts)
}

// TestMergeTilePartitionsTheImage is property #3: tiles covering disjoint
// regions of the image only affect their own region.
func TestMergeTilePartitionsTheImage(t *testing.T) {
	full := NewFull(4, 2)

	left := NewTile(0, 0, 2, 2)
	left.Accumulate(0, 0, integrator.Radiance4{R: 5, G: 5, B: 5, A: 1})
	right := NewTile(2, 0, 2, 2)
	right.Accumulate(0, 0, integrator.Radiance4{R: 9, G: 9, B: 9, A: 1})

	full.MergeTile(left)
	full.MergeTile(right)

	assert.Equal(t, float32(5), full.radiance[0].R)
	assert.Equal(t, float32(9), full.radiance[2].R)
	assert.Equal(t, uint32(0), full.counts[1])
}

func TestMergeTileOutOfBoundsPanics(t *testing.T) {
	full := NewFull(2, 2)
	oversized := NewTile(1, 1, 4, 4)

	assert.Panics(t, func() { full.MergeTile(oversized) })
}

// TestPackUnpackARGBRoundTrip is property #7, exercised directly on the
// bit-packing step (already-tone-mapped [0,1] channel values), independent
// of the Reinhard/gamma curve applied upstream in PixelARGB.
func TestPackUnpackARGBRoundTrip(t *testing.T) {
	a, r, g, b := unpackARGB(packARGB(1, 0, 0, 1))
	assert.InDelta(t, float32(1), a, 1.0/255)
	assert.InDelta(t, float32(0), r, 1.0/255)
	assert.InDelta(t, float32(0), g, 1.0/255)
	assert.InDelta(t, float32(1), b, 1.0/255)

	assert.Equal(t, uint32(0x00000000), packARGB(0, 0, 0, 0))
	assert.Equal(t, uint32(0xFFFFFFFF), packARGB(1, 1, 1, 1))
}

func TestPixelARGBZeroSamplesIsOpaqueBlack(t *testing.T) {
	full := NewFull(1, 1)
	assert.Equal(t, uint32(0xFF000000), full.PixelARGB(0))
}

// TestPixelARGBRoundTripsKnownValue is property #7: a known radiance value
// tone-maps and packs deterministically.
func TestPixelARGBRoundTripsKnownValue(t *testing.T) {
	full := NewFull(1, 1)
	tile := NewTile(0, 0, 1, 1)
	tile.Accumulate(0, 0, integrator.Radiance4{R: 1, G: 1, B: 1, A: 1})
	full.MergeTile(tile)

	got := full.PixelARGB(0)
	a := (got >> 24) & 0xFF
	r := (got >> 16) & 0xFF
	g := (got >> 8) & 0xFF
	b := got & 0xFF

	// Reinhard(1) = 0.5, gamma(0.5, 1/2.2) ~ 0.7297 -> ~186/255. Alpha is
	// tone-mapped identically to color (see DESIGN.md's Open Question
	// decision on alpha handling), so it lands on the same value here.
	assert.InDelta(t, 186, int(r), 2)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
	assert.Equal(t, r, a)
}

// TestAccumulateIncrementsSampleCountByOne is property #8: each call to
// Accumulate advances the sample count for that pixel by exactly one,
// which is what makes progressive convergence well-defined.
func TestAccumulateIncrementsSampleCountByOne(t *testing.T) {
	tile := NewTile(0, 0, 1, 1)
	for i := 0; i < 5; i++ {
		tile.Accumulate(0, 0, integrator.Radiance4{R: 1})
		assert.Equal(t, uint32(i+1), tile.counts[0])
	}
}

func TestWriteToImageBufferResizesWhenLengthMismatches(t *testing.T) {
	full := NewFull(2, 2)
	out := full.WriteToImageBuffer(nil)
	assert.Len(t, out, 4)
	for _, px := range out {
		assert.Equal(t, uint32(0xFF000000), px)
	}
}
