// Package scene holds the flat, read-mostly description of what the path
// tracer renders: primitives grouped by type, materials, and an optional
// environment map.
package scene

import (
	"github.com/mrigankad/pathtracer/envmap"
	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/materials"
	"github.com/mrigankad/pathtracer/vecmath"
)

// Scene is an ordered, flat collection of primitives, materials, and a sky.
// It carries no internal lock — callers (the renderer orchestrator) guard
// concurrent access with a sync.RWMutex per spec.md §5: a frame may begin
// only once no writer holds the lock, and workers only ever read.
type Scene struct {
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Triangles []geometry.Triangle

	Materials []materials.Material
	SkyColor  vecmath.Vec3
	Env       *envmap.Map // nil if no environment map is loaded
}

// New creates an empty scene with the given default sky color.
func New(skyColor vecmath.Vec3) *Scene {
	return &Scene{SkyColor: skyColor}
}

// ResolveMaterial maps a material index to a Material; negative or
// out-of-range indices resolve to the process-wide default material.
func (s *Scene) ResolveMaterial(index int) materials.Material {
	if index < 0 || index >= len(s.Materials) {
		return materials.Default()
	}
	return s.Materials[index]
}

// EnvOrDefault returns the environment radiance along dir, falling back to
// SkyColor when no environment map is loaded.
func (s *Scene) EnvOrDefault(dir vecmath.Vec3) vecmath.Vec3 {
	if s.Env == nil {
		return s.SkyColor
	}
	return s.Env.Sample(dir)
}

// Trace is the closest-hit resolver: spheres, then planes, then triangles,
// keeping the hit with the smallest strictly-positive t. ObjectIndex is
// rewritten to the primitive's position within its type's slice so callers
// can trace back to the originating shape.
func (s *Scene) Trace(ray geometry.Ray) geometry.HitPayload {
	closest := geometry.Miss

	for i, sph := range s.Spheres {
		if h := sph.Intersect(ray); h.Hit() && (!closest.Hit() || h.HitDistance < closest.HitDistance) {
			h.ObjectIndex = i
			closest = h
		}
	}
	for i, pl := range s.Planes {
		if h := pl.Intersect(ray); h.Hit() && (!closest.Hit() || h.HitDistance < closest.HitDistance) {
			h.ObjectIndex = i
			closest = h
		}
	}
	for i, tr := range s.Triangles {
		if h := tr.Intersect(ray); h.Hit() && (!closest.Hit() || h.HitDistance < closest.HitDistance) {
			h.ObjectIndex = i
			closest = h
		}
	}

	return closest
}
