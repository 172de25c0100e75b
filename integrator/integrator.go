// Package integrator implements the unidirectional path-tracing estimator:
// closest-hit resolution, cosine-weighted hemisphere sampling, Russian
// roulette termination, and environment lighting on miss.
package integrator

import (
	"math"

	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/sampler"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/vecmath"
)

// selfIntersectEps offsets a bounced ray's origin along the geometric
// normal to keep it from immediately re-hitting the surface it left.
// f32 machine epsilon is too small in practice once a position has any
// magnitude, so this follows the spec's documented escape hatch and uses
// a world-unit constant instead.
const selfIntersectEps = 1e-4

// Config holds the two knobs the integrator needs per spec.md §4.5:
// bounce budget and the bounce index at which Russian roulette begins.
type Config struct {
	Bounces int
	RRStart int
}

// DefaultConfig matches the values the reference renderer ships with.
func DefaultConfig() Config {
	return Config{Bounces: 8, RRStart: 4}
}

// Radiance4 is the integrator's output: RGB radiance plus alpha, matching
// the accumulator's 4-floats-per-pixel layout.
type Radiance4 struct {
	R, G, B, A float32
}

// Trace runs one path sample through pixel (x, y) and returns a radiance
// estimate. It never panics on a scene with zero primitives or materials —
// it simply reports the environment term on the very first bounce.
func Trace(s *scene.Scene, cam *scene.Camera, x, y int, smp *sampler.Sampler, cfg Config) Radiance4 {
	ray := cam.GetRay(x, y)
	l := vecmath.Vec3Zero
	beta := vecmath.Vec3One

	for b := 0; b < cfg.Bounces; b++ {
		hit := s.Trace(ray)
		if !hit.Hit() {
			l = l.Add(beta.MulVec(s.EnvOrDefault(ray.Direction)))
			break
		}

		m := s.ResolveMaterial(hit.MaterialIndex)
		l = l.Add(beta.MulVec(m.Emission()))

		wi := smp.CosineHemisphere(hit.Normal)
		cosTheta := wi.Dot(hit.Normal)
		if cosTheta < 0 {
			cosTheta = 0
		}
		pdf := cosTheta / float32(math.Pi)
		f := m.Albedo.Mul(1 / float32(math.Pi))

		if pdf > 0 {
			beta = beta.MulVec(f).Mul(cosTheta / pdf)
		} else {
			beta = vecmath.Vec3Zero
		}

		if b >= cfg.RRStart {
			q := beta.MaxComponent()
			if q <= 0 {
				break
			}
			if smp.NextF32() > q {
				break
			}
			beta = beta.Mul(1 / q)
		}

		ray = geometry.Ray{
			Origin:    hit.Position.Add(hit.Normal.Mul(selfIntersectEps)),
			Direction: wi,
		}
	}

	return Radiance4{R: l.X, G: l.Y, B: l.Z, A: 1}
}
