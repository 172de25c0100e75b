package integrator

import (
	"testing"

	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/materials"
	"github.com/mrigankad/pathtracer/sampler"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/vecmath"
	"github.com/stretchr/testify/assert"
)

func straightCamera(w, h int) *scene.Camera {
	return scene.NewCamera(w, h, 0.05, 0.036, 0.036)
}

// TestEmptySceneReturnsEnvironment is S-style scenario: an empty scene with
// no primitives reports the sky color on the very first bounce.
func TestEmptySceneReturnsEnvironment(t *testing.T) {
	sky := vecmath.NewVec3(0.2, 0.4, 0.8)
	s := scene.New(sky)
	cam := straightCamera(64, 64)
	smp := sampler.New(1)

	got := Trace(s, cam, 32, 32, smp, DefaultConfig())

	assert.InDelta(t, sky.X, got.R, 1e-6)
	assert.InDelta(t, sky.Y, got.G, 1e-6)
	assert.InDelta(t, sky.Z, got.B, 1e-6)
	assert.Equal(t, float32(1), got.A)
}

// TestEmissiveSphereContributesDirectLight is S3: a center-pixel ray that
// directly hits an emissive sphere must carry at least the emitted radiance.
func TestEmissiveSphereContributesDirectLight(t *testing.T) {
	s := scene.New(vecmath.Vec3Zero)
	s.Materials = []materials.Material{materials.NewEmissive(vecmath.Vec3One, 1)}
	s.Spheres = []geometry.Sphere{{Center: vecmath.NewVec3(0, 0, -5), Radius: 1, MaterialIndex: 0}}
	cam := straightCamera(65, 65)
	smp := sampler.New(42)

	var meanR, meanG, meanB float32
	const n = 64
	for i := 0; i < n; i++ {
		got := Trace(s, cam, 32, 32, smp, DefaultConfig())
		meanR += got.R
		meanG += got.G
		meanB += got.B
	}
	meanR /= n
	meanG /= n
	meanB /= n

	assert.GreaterOrEqual(t, meanR, float32(1.0))
	assert.GreaterOrEqual(t, meanG, float32(1.0))
	assert.GreaterOrEqual(t, meanB, float32(1.0))
}

// TestFullyAbsorbingMaterialTerminatesWithoutPanicking exercises the
// Russian-roulette short-circuit at q == 0: a black (zero-albedo, no
// emission) material drives beta to zero and must stop without dividing
// by zero or producing NaN.
func TestFullyAbsorbingMaterialTerminatesWithoutPanicking(t *testing.T) {
	s := scene.New(vecmath.Vec3Zero)
	s.Materials = []materials.Material{materials.NewLambertian(vecmath.Vec3Zero)}
	s.Spheres = []geometry.Sphere{{Center: vecmath.NewVec3(0, 0, -5), Radius: 1, MaterialIndex: 0}}
	cam := straightCamera(65, 65)
	smp := sampler.New(7)

	cfg := Config{Bounces: 16, RRStart: 0}
	got := Trace(s, cam, 32, 32, smp, cfg)

	assert.False(t, isNaN(got.R))
	assert.False(t, isNaN(got.G))
	assert.False(t, isNaN(got.B))
	assert.Equal(t, float32(0), got.R)
	assert.Equal(t, float32(0), got.G)
	assert.Equal(t, float32(0), got.B)
}

func isNaN(f float32) bool {
	return f != f
}
