package geometry

import "github.com/mrigankad/pathtracer/vecmath"

const planeEpsilon = 1e-8

// Plane is an infinite plane defined by a point on it and a normal.
type Plane struct {
	Point         vecmath.Vec3
	Normal        vecmath.Vec3
	MaterialIndex int
}

// Intersect does not filter t <= 0 itself — Scene.Trace's closest-positive-t
// rule (via HitPayload.Hit) is the single place that decides what counts as a usable hit, so a
// ray starting behind the plane still reports where the infinite plane
// would be crossed.
func (p Plane) Intersect(ray Ray) HitPayload {
	denom := p.Normal.Dot(ray.Direction)
	if denom > -planeEpsilon && denom < planeEpsilon {
		return Miss
	}

	t := p.Normal.Dot(p.Point.Sub(ray.Origin)) / denom

	facingNormal := p.Normal
	if denom >= 0 {
		facingNormal = p.Normal.Mul(-1)
	}

	return HitPayload{
		HitDistance:   t,
		Position:      ray.At(t),
		Normal:        facingNormal,
		MaterialIndex: p.MaterialIndex,
		ObjectIndex:   -1,
	}
}
