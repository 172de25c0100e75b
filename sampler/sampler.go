// Package sampler provides the per-thread pseudo-random source used by the
// integrator. A Sampler is never shared across goroutines.
package sampler

import (
	"math"
	"math/rand"

	"github.com/mrigankad/pathtracer/vecmath"
)

// Sampler wraps a math/rand source. The wider retrieved pack has no
// third-party PRNG dependency for this concern, so this stays on the
// standard library (see DESIGN.md).
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler seeded deterministically from seed. Each worker in
// the pool owns exactly one Sampler for its lifetime.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// NextF32 returns a uniform float32 in [0, 1).
func (s *Sampler) NextF32() float32 {
	return s.rng.Float32()
}

// Next2D returns two independent uniform floats in [0, 1).
func (s *Sampler) Next2D() (float32, float32) {
	return s.NextF32(), s.NextF32()
}

// Next3D returns three independent uniform floats in [0, 1), packed as a
// Vec3 for convenience. It is not normalized.
func (s *Sampler) Next3D() vecmath.Vec3 {
	return vecmath.NewVec3(s.NextF32(), s.NextF32(), s.NextF32())
}

// CosineHemisphere returns a world-space unit direction whose density
// around normal is cos(theta)/pi, via Malley's method.
func (s *Sampler) CosineHemisphere(normal vecmath.Vec3) vecmath.Vec3 {
	r1, r2 := s.Next2D()
	phi := 2 * math.Pi * float64(r1)
	r := float32(math.Sqrt(float64(r2)))

	localX := r * float32(math.Cos(phi))
	localY := r * float32(math.Sin(phi))
	localZ := float32(math.Sqrt(math.Max(0, 1-float64(r2))))

	t, b := orthonormalBasis(normal)
	return t.Mul(localX).Add(b.Mul(localY)).Add(normal.Mul(localZ))
}

// orthonormalBasis builds {t, b} completing n into a right-handed frame,
// switching the reference "up" vector when n is nearly aligned with Z to
// avoid a degenerate cross product.
func orthonormalBasis(n vecmath.Vec3) (t, b vecmath.Vec3) {
	var up vecmath.Vec3
	if n.Z > 0.999 || n.Z < -0.999 {
		up = vecmath.Vec3Right
	} else {
		up = vecmath.Vec3Front
	}
	t = up.Cross(n).Normalize()
	b = n.Cross(t)
	return t, b
}
