package geometry

import "github.com/mrigankad/pathtracer/vecmath"

// Triangle is a flat triangle with a precomputed face normal.
type Triangle struct {
	V0, V1, V2    vecmath.Vec3
	Normal        vecmath.Vec3 // (V1-V0) x (V2-V0), normalized
	MaterialIndex int
}

// NewTriangle computes the face normal from the ordered vertex winding.
func NewTriangle(v0, v1, v2 vecmath.Vec3, materialIndex int) Triangle {
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal, MaterialIndex: materialIndex}
}

// Intersect resolves the plane through the triangle, then runs three
// same-side edge tests around the oriented edges. Barycentric coordinates
// are not computed, since no current material consumes them.
func (tr Triangle) Intersect(ray Ray) HitPayload {
	denom := tr.Normal.Dot(ray.Direction)
	if denom > -planeEpsilon && denom < planeEpsilon {
		return Miss
	}

	t := tr.Normal.Dot(tr.V0.Sub(ray.Origin)) / denom
	if t <= 0 {
		return Miss
	}

	point := ray.At(t)

	edges := [3][2]vecmath.Vec3{
		{tr.V0, tr.V1},
		{tr.V1, tr.V2},
		{tr.V2, tr.V0},
	}

	for _, edge := range edges {
		edgeVec := edge[1].Sub(edge[0])
		toPoint := point.Sub(edge[0])
		cross := edgeVec.Cross(toPoint)
		if tr.Normal.Dot(cross) < 0 {
			return Miss
		}
	}

	facingNormal := tr.Normal
	if denom >= 0 {
		facingNormal = tr.Normal.Mul(-1)
	}

	return HitPayload{
		HitDistance:   t,
		Position:      point,
		Normal:        facingNormal,
		MaterialIndex: tr.MaterialIndex,
		ObjectIndex:   -1,
	}
}
