// Command pathtrace drives the renderer from the command line: load (or
// default) a scene, render it progressively for a fixed number of passes,
// and write the accumulated image out as PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/mrigankad/pathtracer/config"
	"github.com/mrigankad/pathtracer/envmap"
	"github.com/mrigankad/pathtracer/geometry"
	"github.com/mrigankad/pathtracer/integrator"
	"github.com/mrigankad/pathtracer/materials"
	"github.com/mrigankad/pathtracer/renderer"
	"github.com/mrigankad/pathtracer/scene"
	"github.com/mrigankad/pathtracer/sceneio"
	"github.com/mrigankad/pathtracer/vecmath"
)

func main() {
	var (
		configPath = flag.String("config", "pathtrace.toml", "path to the TOML configuration file")
		scenePath  = flag.String("scene", "", "path to a YAML scene description; empty builds a default demo scene")
		passes     = flag.Int("passes", 32, "number of progressive render passes")
		output     = flag.String("output", "", "output PNG path, overrides the config's output_path")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalw("loading config", "error", err)
	}

	sc, err := loadOrBuildScene(*scenePath, log)
	if err != nil {
		log.Fatalw("loading scene", "error", err)
	}

	cam := scene.NewCamera(cfg.Width, cfg.Height, 0.05, 0.036, 0.036)
	cam.SetPosition(vecmath.NewVec3(0, 0, 4))

	r := renderer.New(cfg.Workers, integrator.Config{Bounces: cfg.Bounces, RRStart: cfg.RRStart}, log)
	defer r.Close()

	r.SetScene(sc)
	r.SetActiveCamera(cam)
	r.SetSize(cfg.Width, cfg.Height)

	for i := 0; i < *passes; i++ {
		stats := r.Render(i == 0)
		log.Infow("render pass complete", "pass", i+1, "of", *passes,
			"tiles", stats.TilesRendered, "duration", stats.RenderDuration)
	}

	outPath := cfg.OutputPath
	if *output != "" {
		outPath = *output
	}
	if err := writePNG(outPath, r.GetOutput(), cfg.Width, cfg.Height); err != nil {
		log.Fatalw("writing output", "path", outPath, "error", err)
	}
	log.Infow("wrote render", "path", outPath)
}

func loadOrBuildScene(path string, log *zap.SugaredLogger) (*scene.Scene, error) {
	if path == "" {
		return defaultScene(), nil
	}
	return sceneio.Load(path, envmap.NopLoader{})
}

// defaultScene is the demo scene rendered when no --scene flag is given: a
// single emissive sphere over a diffuse ground plane under a dim sky.
func defaultScene() *scene.Scene {
	s := scene.New(vecmath.NewVec3(0.05, 0.05, 0.08))
	s.Materials = []materials.Material{
		materials.NewEmissive(vecmath.Vec3One, 4),
		materials.NewLambertian(vecmath.NewVec3(0.8, 0.8, 0.8)),
	}
	s.Spheres = append(s.Spheres, geometry.Sphere{
		Center: vecmath.NewVec3(0, 1, -3), Radius: 1, MaterialIndex: 0,
	})
	s.Planes = append(s.Planes, geometry.Plane{
		Point: vecmath.NewVec3(0, -1, 0), Normal: vecmath.Vec3Up, MaterialIndex: 1,
	})
	return s
}

func writePNG(path string, argb []uint32, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := argb[y*width+x]
			a := uint8(px >> 24)
			r := uint8(px >> 16)
			g := uint8(px >> 8)
			b := uint8(px)
			img.Set(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
