package scene

import (
	"math"

	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/vecmath"
)

// Camera is a pinhole camera. Rotation is Euler XYZ order, radians. Setters
// mark the derived state dirty; GetRay recomputes it lazily, mirroring the
// teacher's Camera.updateMatrices dirty-flag pattern.
type Camera struct {
	Position     vecmath.Vec3
	Rotation     vecmath.Vec3 // Euler XYZ, radians
	Width        int
	Height       int
	FocalLength  float32
	SensorWidth  float32
	SensorHeight float32

	dirty        bool
	aspectRatio  float32
	fovY         float32
	localToWorld vecmath.Mat4
	forward      vecmath.Vec3
	up           vecmath.Vec3
	right        vecmath.Vec3
}

// NewCamera builds a pinhole camera at the origin looking down -Z.
func NewCamera(width, height int, focalLength, sensorWidth, sensorHeight float32) *Camera {
	c := &Camera{
		Position:     vecmath.Vec3Zero,
		Rotation:     vecmath.Vec3Zero,
		Width:        width,
		Height:       height,
		FocalLength:  focalLength,
		SensorWidth:  sensorWidth,
		SensorHeight: sensorHeight,
		dirty:        true,
	}
	c.recalculate()
	return c
}

func (c *Camera) SetPosition(p vecmath.Vec3) {
	c.Position = p
	c.dirty = true
}

func (c *Camera) SetRotation(eulerXYZ vecmath.Vec3) {
	c.Rotation = eulerXYZ
	c.dirty = true
}

func (c *Camera) SetResolution(width, height int) {
	c.Width = width
	c.Height = height
	c.dirty = true
}

func (c *Camera) Resolution() (int, int) {
	return c.Width, c.Height
}

// recalculate is the single entrypoint that derives FOV, the local-to-world
// transform, and the cached basis vectors, matching the original source's
// one-call recompute rather than recomputing piecemeal per setter.
func (c *Camera) recalculate() {
	if c.Height > 0 {
		c.aspectRatio = float32(c.Width) / float32(c.Height)
	}
	c.fovY = 2 * float32(math.Atan(float64(c.SensorHeight/(2*c.FocalLength))))
	c.localToWorld = vecmath.Mat4TR(c.Position, c.Rotation)
	c.forward = c.localToWorld.MulDirection(vecmath.NewVec3(0, 0, -1)).Normalize()
	c.up = c.localToWorld.MulDirection(vecmath.Vec3Up).Normalize()
	c.right = c.localToWorld.MulDirection(vecmath.Vec3Right).Normalize()
	c.dirty = false
}

func (c *Camera) ensureFresh() {
	if c.dirty {
		c.recalculate()
	}
}

// Prime forces the derived state to be recomputed if dirty. The renderer
// orchestrator calls this once before dispatching a frame's tiles so that
// concurrent workers only ever read already-fresh cached state instead of
// racing each other into recalculate.
func (c *Camera) Prime() {
	c.ensureFresh()
}

// Forward, Up, Right return the cached camera basis vectors.
func (c *Camera) Forward() vecmath.Vec3 {
	c.ensureFresh()
	return c.forward
}

func (c *Camera) Up() vecmath.Vec3 {
	c.ensureFresh()
	return c.up
}

func (c *Camera) Right() vecmath.Vec3 {
	c.ensureFresh()
	return c.right
}

func (c *Camera) FOV() float32 {
	c.ensureFresh()
	return c.fovY
}

func (c *Camera) AspectRatio() float32 {
	c.ensureFresh()
	return c.aspectRatio
}

// GetRay returns the world-space primary ray through pixel (x, y), per
// spec.md §4.3: NDC from pixel center, scaled by tan(FOV/2) and aspect,
// transformed to world via the camera basis.
func (c *Camera) GetRay(x, y int) geometry.Ray {
	c.ensureFresh()

	u := (float32(x) + 0.5) / float32(c.Width)
	v := (float32(y) + 0.5) / float32(c.Height)

	tanHalfFOV := float32(math.Tan(float64(c.fovY) / 2))
	ndcX := (u*2 - 1) * tanHalfFOV * c.aspectRatio
	ndcY := (v*2 - 1) * tanHalfFOV

	localDir := vecmath.NewVec3(ndcX, ndcY, -1)
	worldDir := c.localToWorld.MulDirection(localDir).Normalize()

	return geometry.Ray{Origin: c.Position, Direction: worldDir}
}
