// Command heartfield renders PNG frames of the beating heart scene.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"

	"github.com/jlloren/heartfield"
	"github.com/jlloren/heartfield/internal/m32"
	"github.com/jlloren/heartfield/render"
)

func main() {
	var (
		width     = flag.Int("width", 800, "output width in pixels")
		height    = flag.Int("height", 600, "output height in pixels")
		start     = flag.Float64("time", 0, "scene time of the first frame in seconds")
		frames    = flag.Int("frames", 1, "number of frames to render")
		fps       = flag.Float64("fps", 30, "frame rate when rendering more than one frame")
		zoom      = flag.Float64("zoom", 2, "camera zoom, smaller is a wider field of view")
		azimuth   = flag.Float64("azimuth", 20, "camera azimuth in degrees")
		elevation = flag.Float64("elevation", 15, "camera elevation in degrees")
		distance  = flag.Float64("distance", 6, "camera distance from the look-at point")
		ss        = flag.Int("supersample", 1, "supersampling factor")
		sceneName = flag.String("scene", "heart", "scene to render: heart or showcase")
		out       = flag.String("o", "heart.png", "output file, used as a printf pattern when -frames > 1")
	)
	flag.Parse()

	var scene *heartfield.Scene
	var lookAt ms3.Vec
	switch *sceneName {
	case "heart":
		scene = heartfield.HeartScene()
	case "showcase":
		scene = heartfield.ShowcaseScene()
		lookAt = ms3.Vec{Y: 0.9}
	default:
		log.Fatalf("unknown scene %q", *sceneName)
	}

	// The camera basis is undefined looking straight up or down; the orbit
	// owner clamps elevation, the renderer does not.
	el := m32.Clamp(float32(*elevation), -89, 89) * math32.Pi / 180
	az := float32(*azimuth) * math32.Pi / 180
	d := float32(*distance)
	cam := render.Camera{
		Pos: ms3.Add(lookAt, ms3.Vec{
			X: d * math32.Cos(el) * math32.Sin(az),
			Y: d * math32.Sin(el),
			Z: d * math32.Cos(el) * math32.Cos(az),
		}),
		LookAt: lookAt,
		Zoom:   float32(*zoom),
	}

	for i := 0; i < *frames; i++ {
		r := render.Renderer{
			Scene:  scene,
			Camera: cam,
			Width:  *width,
			Height: *height,
			Time:   float32(*start) + float32(i)/float32(*fps),
		}
		img := r.RenderSupersampled(*ss)
		name := *out
		if *frames > 1 {
			if !strings.Contains(name, "%") {
				name = strings.TrimSuffix(name, ".png") + "_%04d.png"
			}
			name = fmt.Sprintf(name, i)
		}
		if err := writePNG(name, img); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (t=%.3fs)", name, r.Time)
	}
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
