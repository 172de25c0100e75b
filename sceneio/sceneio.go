// Package sceneio reads and writes scene descriptions from disk as YAML,
// grounded on the engine-asset-description pattern used elsewhere in the
// wider pack (shader descriptions loaded the same way).
package sceneio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrigankad/pathtracer/envmap"
	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/materials"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/vecmath"
)

type vec3Doc struct {
	X, Y, Z float32
}

func (v vec3Doc) toVec3() vecmath.Vec3 { return vecmath.NewVec3(v.X, v.Y, v.Z) }

func fromVec3(v vecmath.Vec3) vec3Doc { return vec3Doc{X: v.X, Y: v.Y, Z: v.Z} }

type materialDoc struct {
	Albedo        vec3Doc `yaml:"albedo"`
	Roughness     float32 `yaml:"roughness"`
	Metalness     float32 `yaml:"metalness"`
	EmissionColor vec3Doc `yaml:"emission_color"`
	EmissivePower float32 `yaml:"emissive_power"`
}

type sphereDoc struct {
	Center        vec3Doc `yaml:"center"`
	Radius        float32 `yaml:"radius"`
	MaterialIndex int     `yaml:"material_index"`
}

type planeDoc struct {
	Point         vec3Doc `yaml:"point"`
	Normal        vec3Doc `yaml:"normal"`
	MaterialIndex int     `yaml:"material_index"`
}

type triangleDoc struct {
	V0            vec3Doc `yaml:"v0"`
	V1            vec3Doc `yaml:"v1"`
	V2            vec3Doc `yaml:"v2"`
	MaterialIndex int     `yaml:"material_index"`
}

// document is the on-disk shape of a scene description file.
type document struct {
	SkyColor  vec3Doc       `yaml:"sky_color"`
	EnvPath   string        `yaml:"env_path,omitempty"`
	Materials []materialDoc `yaml:"materials"`
	Spheres   []sphereDoc   `yaml:"spheres"`
	Planes    []planeDoc    `yaml:"planes"`
	Triangles []triangleDoc `yaml:"triangles"`
}

// Load parses a scene description file. If the document names an
// environment map and loader is non-nil, Load attempts to resolve it;
// failure to load the environment map is non-fatal — the scene falls back
// to its sky color.
func Load(path string, loader envmap.Loader) (*scene.Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneio: reading %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parsing %s: %w", path, err)
	}

	s := scene.New(doc.SkyColor.toVec3())

	for _, m := range doc.Materials {
		s.Materials = append(s.Materials, materials.Material{
			Albedo:        m.Albedo.toVec3(),
			Roughness:     m.Roughness,
			Metalness:     m.Metalness,
			EmissionColor: m.EmissionColor.toVec3(),
			EmissivePower: m.EmissivePower,
		})
	}
	for _, sp := range doc.Spheres {
		s.Spheres = append(s.Spheres, geometry.Sphere{
			Center:        sp.Center.toVec3(),
			Radius:        sp.Radius,
			MaterialIndex: sp.MaterialIndex,
		})
	}
	for _, pl := range doc.Planes {
		s.Planes = append(s.Planes, geometry.Plane{
			Point:         pl.Point.toVec3(),
			Normal:        pl.Normal.toVec3(),
			MaterialIndex: pl.MaterialIndex,
		})
	}
	for _, tr := range doc.Triangles {
		s.Triangles = append(s.Triangles, geometry.NewTriangle(
			tr.V0.toVec3(), tr.V1.toVec3(), tr.V2.toVec3(), tr.MaterialIndex,
		))
	}

	if doc.EnvPath != "" && loader != nil {
		if env, err := loader.Load(doc.EnvPath); err == nil {
			s.Env = env
		}
	}

	return s, nil
}

// Save serializes a scene to path as YAML. Triangle normals are recomputed
// on Load, not round-tripped.
func Save(path string, s *scene.Scene) error {
	doc := document{SkyColor: fromVec3(s.SkyColor)}

	for _, m := range s.Materials {
		doc.Materials = append(doc.Materials, materialDoc{
			Albedo:        fromVec3(m.Albedo),
			Roughness:     m.Roughness,
			Metalness:     m.Metalness,
			EmissionColor: fromVec3(m.EmissionColor),
			EmissivePower: m.EmissivePower,
		})
	}
	for _, sp := range s.Spheres {
		doc.Spheres = append(doc.Spheres, sphereDoc{
			Center: fromVec3(sp.Center), Radius: sp.Radius, MaterialIndex: sp.MaterialIndex,
		})
	}
	for _, pl := range s.Planes {
		doc.Planes = append(doc.Planes, planeDoc{
			Point: fromVec3(pl.Point), Normal: fromVec3(pl.Normal), MaterialIndex: pl.MaterialIndex,
		})
	}
	for _, tr := range s.Triangles {
		doc.Triangles = append(doc.Triangles, triangleDoc{
			V0: fromVec3(tr.V0), V1: fromVec3(tr.V1), V2: fromVec3(tr.V2), MaterialIndex: tr.MaterialIndex,
		})
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("sceneio: encoding: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
