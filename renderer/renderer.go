// Package renderer is the orchestrator that ties the scene, camera, worker
// pool, and accumulators into a progressive render loop.
package renderer

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mrigankad/pathtracer/accum"
	"github.com/mrigankad/pathtracer/integrator"
	"github.com/mrigankad/pathtracer/sampler"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/workerpool"
)

// tileSize is the fixed tile edge length per spec.md §4.9.
const tileSize = 64

// Stats summarizes one Render call, echoed to callers for progress display.
type Stats struct {
	Width, Height  int
	TilesRendered  int
	SamplesAdded   int
	RenderDuration time.Duration
}

// Renderer owns the shared scene, camera, and full accumulator behind a
// single reader-writer lock: render-time workers only ever read the scene
// and camera. The write lock is taken by the setters, by Render (to reset
// the accumulator, merge completed tiles, and record the render time), and
// by GetOutput (to cache the materialized buffer).
type Renderer struct {
	mu sync.RWMutex

	scene  *scene.Scene
	camera *scene.Camera
	full   *accum.FullAccumulator

	width, height int
	output        []uint32
	lastRender    time.Duration

	pool   *workerpool.Pool
	cfg    integrator.Config
	log    *zap.SugaredLogger
	closed bool
}

// New builds a renderer with a pool of workerCount goroutines. A nil logger
// falls back to a no-op logger so the renderer never needs a nil check at
// call sites.
func New(workerCount int, cfg integrator.Config, logger *zap.SugaredLogger) *Renderer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Renderer{
		pool: workerpool.New(workerCount, 0),
		cfg:  cfg,
		log:  logger,
	}
}

// SetScene installs the active scene. Safe to call between renders; it
// takes the write lock.
func (r *Renderer) SetScene(s *scene.Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scene = s
}

// SetActiveCamera installs the active camera.
func (r *Renderer) SetActiveCamera(cam *scene.Camera) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.camera = cam
}

// SetSize resizes the render target. If the size actually changed, the
// full accumulator is replaced with a zeroed one and the camera's
// resolution is updated to match.
func (r *Renderer) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width == r.width && height == r.height && r.full != nil {
		return
	}

	r.width, r.height = width, height
	r.full = accum.NewFull(width, height)
	if r.camera != nil {
		r.camera.SetResolution(width, height)
	}
	r.log.Debugw("resized render target", "width", width, "height", height)
}

// CurrentSize returns the renderer's current resolution.
func (r *Renderer) CurrentSize() (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width, r.height
}

// LastRenderTime returns the wall-clock duration of the most recent Render.
func (r *Renderer) LastRenderTime() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRender
}

// Render dispatches one sample per pixel across the tile grid and merges
// the results into the full accumulator. Passing reset=true zeroes the
// accumulator first, discarding prior samples.
func (r *Renderer) Render(reset bool) Stats {
	start := time.Now()

	r.mu.Lock()
	if reset {
		r.full = accum.NewFull(r.width, r.height)
	}
	width, height := r.width, r.height
	sc := r.scene
	cam := r.camera
	cfg := r.cfg
	r.mu.Unlock()

	// Force the camera's derived state (FOV, basis vectors) to be fresh
	// before any worker can observe it, so concurrent GetRay calls during
	// the frame never race on the dirty-flag recompute.
	if cam != nil {
		cam.Prime()
	}

	rects := tileRects(width, height, tileSize)

	go func() {
		for _, tr := range rects {
			tr := tr
			r.pool.Submit(func(smp *sampler.Sampler) accum.TileAccumulator {
				r.mu.RLock()
				defer r.mu.RUnlock()
				tile := accum.NewTile(tr.x, tr.y, tr.w, tr.h)
				for ly := 0; ly < tr.h; ly++ {
					for lx := 0; lx < tr.w; lx++ {
						sample := integrator.Trace(sc, cam, tr.x+lx, tr.y+ly, smp, cfg)
						tile.Accumulate(lx, ly, sample)
					}
				}
				return tile
			})
		}
	}()

	samplesAdded := 0
	for range rects {
		tile := <-r.pool.Results()
		r.mu.Lock()
		r.full.MergeTile(tile)
		r.mu.Unlock()
		samplesAdded += tile.Width * tile.Height
	}

	r.mu.Lock()
	r.lastRender = time.Since(start)
	r.mu.Unlock()

	r.log.Debugw("render complete", "tiles", len(rects), "duration", r.lastRender)

	return Stats{
		Width:          width,
		Height:         height,
		TilesRendered:  len(rects),
		SamplesAdded:   samplesAdded,
		RenderDuration: r.lastRender,
	}
}

// GetOutput materializes the current tone-mapped image and returns a copy
// of the internal ARGB buffer. It takes the write lock because it caches
// the materialized buffer on the Renderer itself.
func (r *Renderer) GetOutput() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = r.full.WriteToImageBuffer(r.output)
	out := make([]uint32, len(r.output))
	copy(out, r.output)
	return out
}

// Close joins the worker pool and releases renderer resources. Calls after
// the first are no-ops.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.pool.Close()
}
