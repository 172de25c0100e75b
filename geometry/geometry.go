// Package geometry implements the analytic primitives the path tracer
// intersects against: spheres, planes, and triangles behind a single
// Ray/HitPayload contract.
package geometry

import "github.com/mrigankad/pathtracer/vecmath"

// Ray is a parametric ray: points along it are Origin + t*Direction.
// Direction is unit length by convention at generation; intersection code
// must not assume it.
type Ray struct {
	Origin    vecmath.Vec3
	Direction vecmath.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) vecmath.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// HitPayload carries the result of an intersection. Sphere and Triangle
// return one only when HitDistance > 0; Plane may return one with
// HitDistance <= 0, which Hit reports as a miss.
type HitPayload struct {
	HitDistance   float32
	Position      vecmath.Vec3
	Normal        vecmath.Vec3 // world-space, faces against the incident ray
	MaterialIndex int          // -1 means "use default material"
	ObjectIndex   int          // -1 means "none"
}

// Miss is the sentinel returned by Intersect implementations that find no hit.
var Miss = HitPayload{HitDistance: -1}

// Hit reports whether the payload represents an actual intersection.
func (p HitPayload) Hit() bool {
	return p.HitDistance > 0
}

// Primitive is the uniform intersection contract every analytic shape honors.
type Primitive interface {
	Intersect(ray Ray) HitPayload
}
