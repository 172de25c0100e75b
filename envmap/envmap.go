// Package envmap implements equirectangular HDR environment lookup for
// primary-ray misses. The actual EXR decoding is an external collaborator
// (see Loader) — this package never parses image files itself.
package envmap

import (
	"math"

	"github.com/mrigankad/pathtracer/vecmath"
)

// Map is a row-major equirectangular HDR environment: width*height radiance
// pixels, three floats each. Unowned pixels (out of slice range) are never
// addressed by Sample, which wraps/clamps into range.
type Map struct {
	Width, Height int
	Pixels        []vecmath.Vec3 // row-major, length Width*Height
}

// New allocates a zeroed environment map of the given dimensions.
func New(width, height int) *Map {
	return &Map{Width: width, Height: height, Pixels: make([]vecmath.Vec3, width*height)}
}

// Sample looks up the radiance in direction dir via nearest-neighbor
// equirectangular projection: theta = acos(clamp(d.y,-1,1)), phi =
// atan2(d.z, d.x), u = (phi+pi)/(2pi), v = theta/pi.
func (m *Map) Sample(dir vecmath.Vec3) vecmath.Vec3 {
	if m == nil || m.Width == 0 || m.Height == 0 {
		return vecmath.Vec3Zero
	}

	d := dir.Normalize()
	y := d.Y
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}

	theta := math.Acos(float64(y))
	phi := math.Atan2(float64(d.Z), float64(d.X))

	u := (phi + math.Pi) / (2 * math.Pi)
	v := theta / math.Pi

	x := wrapIndex(int(math.Floor(u*float64(m.Width))), m.Width)
	yy := wrapIndex(int(math.Floor(v*float64(m.Height))), m.Height)

	return m.Pixels[yy*m.Width+x]
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Loader is the external collaborator that turns a filesystem path into an
// environment map. A real implementation parses EXR; THE CORE never does.
type Loader interface {
	Load(path string) (*Map, error)
}

// NopLoader always reports the file as unavailable, the default when no
// real EXR decoder is wired in. Callers fall back to the scene's sky color.
type NopLoader struct{}

func (NopLoader) Load(path string) (*Map, error) {
	return nil, &LoadError{Path: path}
}

// LoadError reports that an environment map could not be loaded. This is a
// resource-load failure (spec §7), not a programmer-bug invariant
// violation: callers surface it as an optional result, never a panic.
type LoadError struct {
	Path string
}

func (e *LoadError) Error() string {
	return "envmap: no loader configured for " + e.Path
}
