package workerpool

import (
	"testing"

	"github.com/mrigankad/pathtracer/accum"
	"github.com/mrigankad/pathtracer/sampler"
	"github.com/stretchr/testify/assert"
)

func TestPoolExecutesAllJobsAndReturnsResults(t *testing.T) {
	p := New(4, 1)

	const n = 16
	go func() {
		for i := 0; i < n; i++ {
			offsetX := i
			p.Submit(func(smp *sampler.Sampler) accum.TileAccumulator {
				tile := accum.NewTile(offsetX, 0, 1, 1)
				_ = smp.NextF32()
				return tile
			})
		}
	}()

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		tile := <-p.Results()
		seen[tile.OffsetX] = true
	}
	assert.Len(t, seen, n)

	p.Close()
}

func TestPoolWorkersHaveIndependentSamplers(t *testing.T) {
	p := New(2, 99)

	results := make(chan float32, 2)
	for i := 0; i < 2; i++ {
		p.Submit(func(smp *sampler.Sampler) accum.TileAccumulator {
			results <- smp.NextF32()
			return accum.NewTile(0, 0, 1, 1)
		})
	}
	<-p.Results()
	<-p.Results()

	// The first worker blocks sending its result until it is received, so
	// the second job runs on the other worker and its other sampler.
	assert.NotEqual(t, <-results, <-results)

	p.Close()
}
