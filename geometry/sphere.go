package geometry

import (
	"math"

	"github.com/mrigankad/pathtracer/vecmath"
)

// Sphere is an analytic sphere primitive. MaterialIndex < 0 means "use the
// scene's default material."
type Sphere struct {
	Center        vecmath.Vec3
	Radius        float32
	MaterialIndex int
}

func (s Sphere) Intersect(ray Ray) HitPayload {
	oc := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Miss
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sqrtD) / (2 * a)
	if t <= 0 {
		return Miss
	}

	localHit := oc.Add(ray.Direction.Mul(t))
	normal := localHit.Mul(1 / s.Radius)

	return HitPayload{
		HitDistance:   t,
		Position:      localHit.Add(s.Center),
		Normal:        normal,
		MaterialIndex: s.MaterialIndex,
		ObjectIndex:   -1,
	}
}
