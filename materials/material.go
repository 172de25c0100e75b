// Package materials defines the Lambertian-emissive material record used
// by the integrator.
package materials

import "github.com/mrigankad/pathtracer/vecmath"

// Material is a Lambertian-emissive material. Metalness is reserved for a
// future BRDF extension and is unused by the current path tracer.
type Material struct {
	Albedo         vecmath.Vec3 // each component in [0,1]
	Roughness      float32      // [0,1], unused by current BRDF
	Metalness      float32      // [0,1], reserved
	EmissionColor  vecmath.Vec3 // each component >= 0
	EmissivePower  float32      // >= 0
}

// Default is the process-wide default material: albedo 1, roughness 0.5,
// no emission. It is a constant value, never a mutable global singleton —
// callers get it by value from Default().
func Default() Material {
	return Material{
		Albedo:        vecmath.Vec3One,
		Roughness:     0.5,
		Metalness:     0,
		EmissionColor: vecmath.Vec3Zero,
		EmissivePower: 0,
	}
}

// Emission returns the material's radiant emission: EmissionColor * EmissivePower.
func (m Material) Emission() vecmath.Vec3 {
	return m.EmissionColor.Mul(m.EmissivePower)
}

// --- Convenience constructors, in the spirit of a small material library ---

func NewLambertian(albedo vecmath.Vec3) Material {
	m := Default()
	m.Albedo = albedo
	return m
}

func NewEmissive(color vecmath.Vec3, power float32) Material {
	m := Default()
	m.Albedo = vecmath.Vec3Zero
	m.EmissionColor = color
	m.EmissivePower = power
	return m
}
