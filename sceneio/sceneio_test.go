package sceneio

import (
	"path/filepath"
	"testing"

	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/materials"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenLoadRoundTripsPrimitivesAndMaterials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	s := scene.New(vecmath.NewVec3(0.1, 0.2, 0.3))
	s.Materials = []materials.Material{materials.NewEmissive(vecmath.Vec3One, 2)}
	s.Spheres = []geometry.Sphere{{Center: vecmath.NewVec3(0, 0, -5), Radius: 1.5, MaterialIndex: 0}}
	s.Planes = []geometry.Plane{{Point: vecmath.NewVec3(0, -1, 0), Normal: vecmath.Vec3Up, MaterialIndex: 0}}
	s.Triangles = []geometry.Triangle{geometry.NewTriangle(
		vecmath.NewVec3(-1, 0, 0), vecmath.NewVec3(1, 0, 0), vecmath.NewVec3(0, 1, 0), 0,
	)}

	require.NoError(t, Save(path, s))

	loaded, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, s.SkyColor, loaded.SkyColor)
	require.Len(t, loaded.Materials, 1)
	assert.Equal(t, float32(2), loaded.Materials[0].EmissivePower)

	require.Len(t, loaded.Spheres, 1)
	assert.Equal(t, s.Spheres[0].Radius, loaded.Spheres[0].Radius)

	require.Len(t, loaded.Planes, 1)
	assert.Equal(t, s.Planes[0].Normal, loaded.Planes[0].Normal)

	require.Len(t, loaded.Triangles, 1)
	assert.Equal(t, s.Triangles[0].V0, loaded.Triangles[0].V0)
}

func TestLoadReportsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
