package render

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/jlloren/heartfield"
	"github.com/jlloren/heartfield/internal/m32"
)

// Distance fog: hits blend toward the horizon sky between these travel
// distances.
const (
	fogStart = 12
	fogEnd   = 60
)

// Renderer evaluates one frame of a scene. All fields are immutable
// snapshots for the duration of a Render call; pixels share nothing and may
// be evaluated in any order or concurrently.
type Renderer struct {
	Scene  *heartfield.Scene
	Camera Camera
	Width  int
	Height int
	// Time is the elapsed scene time in seconds.
	Time float32
}

// PixelColor is the per-pixel pipeline: screen coordinate in, display-ready
// RGB out, components in [0, 1]. px and py are expressed in the same pixel
// space as Width and Height, typically sampled at pixel centers.
func (r *Renderer) PixelColor(px, py float32) ms3.Vec {
	w, h := float32(r.Width), float32(r.Height)
	uv := ms2.Vec{
		X: (2*px - w) / h,
		Y: (h - 2*py) / h, // image rows grow downward
	}
	dir := r.Camera.Ray(uv)
	dist, id := March(r.Scene, r.Camera.Pos, dir, r.Time)
	if id == heartfield.MaterialNone {
		return GammaEncode(SkyColor(dir))
	}
	p := ms3.Add(r.Camera.Pos, ms3.Scale(dist, dir))
	n := r.Scene.Normal(p, id, r.Time)
	view := ms3.Unit(ms3.Sub(r.Camera.Pos, p))
	c := Tonemap(Shade(p, n, view, id.Surface(), LightAt(r.Time)))
	fog := m32.SmoothStep(fogStart, fogEnd, dist)
	return m32.MixElem(c, GammaEncode(skyHorizon), fog)
}

// Render rasterizes the frame, partitioning rows across one worker per CPU.
// Rows write to disjoint image regions so the workers need no coordination
// beyond the final wait.
func (r *Renderer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	rows := make(chan int, r.Height)
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < r.Width; x++ {
					c := r.PixelColor(float32(x)+0.5, float32(y)+0.5)
					img.SetRGBA(x, y, rgba8(c))
				}
			}
		}()
	}
	for y := 0; y < r.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
	return img
}

// RenderSupersampled renders at factor times the target resolution and
// downscales with Lanczos resampling. A factor of 1 or less is a plain
// Render.
func (r *Renderer) RenderSupersampled(factor int) image.Image {
	if factor <= 1 {
		return r.Render()
	}
	big := Renderer{
		Scene:  r.Scene,
		Camera: r.Camera,
		Width:  r.Width * factor,
		Height: r.Height * factor,
		Time:   r.Time,
	}
	return resize.Resize(uint(r.Width), uint(r.Height), big.Render(), resize.Lanczos3)
}

func rgba8(c ms3.Vec) color.RGBA {
	return color.RGBA{
		R: uint8(m32.Saturate(c.X)*255 + 0.5),
		G: uint8(m32.Saturate(c.Y)*255 + 0.5),
		B: uint8(m32.Saturate(c.Z)*255 + 0.5),
		A: 255,
	}
}
