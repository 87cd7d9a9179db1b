package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"

	"github.com/jlloren/heartfield"
	"github.com/jlloren/heartfield/internal/m32"
)

// Light is a point light with fixed radiance.
type Light struct {
	Pos      ms3.Vec
	Radiance ms3.Vec
}

// LightAt returns the scene light at time t. The position oscillates
// left-right above the scene; radiance is constant.
func LightAt(t float32) Light {
	return Light{
		Pos:      ms3.Vec{X: 3 * math32.Sin(0.7*t), Y: 4, Z: 3.5},
		Radiance: ms3.Vec{X: 22, Y: 22, Z: 22},
	}
}

const (
	// specEpsilon guards the specular denominator at grazing angles.
	specEpsilon = 1e-4
	// ambientLevel scales the sky-tinted ambient term.
	ambientLevel = 0.08
)

var one3 = ms3.Vec{X: 1, Y: 1, Z: 1}

// distributionGGX is the Trowbridge-Reitz normal distribution term with
// α = roughness².
func distributionGGX(ndoth, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	den := ndoth*ndoth*(a2-1) + 1
	return a2 / (math32.Pi * den * den)
}

func geometrySchlickGGX(ndotx, k float32) float32 {
	return ndotx / (ndotx*(1-k) + k)
}

// geometrySmith combines the view and light Schlick-GGX terms with the
// direct-lighting remap k = (roughness+1)²/8.
func geometrySmith(ndotv, ndotl, roughness float32) float32 {
	k := (roughness + 1) * (roughness + 1) / 8
	return geometrySchlickGGX(ndotv, k) * geometrySchlickGGX(ndotl, k)
}

// fresnelSchlick is the Schlick approximation F0 + (1−F0)(1−cosθ)⁵.
func fresnelSchlick(cosTheta float32, f0 ms3.Vec) ms3.Vec {
	f := math32.Pow(1-cosTheta, 5)
	return ms3.Add(f0, ms3.Scale(f, ms3.Sub(one3, f0)))
}

// Shade evaluates the Cook-Torrance model at surface point p with unit
// normal n and unit view direction (surface to eye), returning HDR radiance:
// a single direct light contribution with 1/(d²+1) attenuation plus a
// sky-tinted ambient term. Output is unbounded above 1.
func Shade(p, n, view ms3.Vec, surf heartfield.Surface, light Light) ms3.Vec {
	toLight := ms3.Sub(light.Pos, p)
	dist := ms3.Norm(toLight)
	l := ms3.Scale(1/dist, toLight)
	h := ms3.Unit(ms3.Add(view, l))

	ndotl := math32.Max(ms3.Dot(n, l), 0)
	ndotv := math32.Max(ms3.Dot(n, view), 0.001)
	ndoth := math32.Max(ms3.Dot(n, h), 0)
	vdoth := math32.Max(ms3.Dot(view, h), 0)

	f0 := m32.MixElem(ms3.Vec{X: 0.04, Y: 0.04, Z: 0.04}, surf.Albedo, surf.Metallic)
	d := distributionGGX(ndoth, surf.Roughness)
	g := geometrySmith(ndotv, ndotl, surf.Roughness)
	f := fresnelSchlick(vdoth, f0)

	specular := ms3.Scale(d*g/(4*ndotv*ndotl+specEpsilon), f)
	kd := ms3.Scale(1-surf.Metallic, ms3.Sub(one3, f))
	diffuse := ms3.Scale(1/math32.Pi, ms3.MulElem(kd, surf.Albedo))

	atten := 1 / (dist*dist + 1)
	direct := ms3.Scale(atten*ndotl, ms3.MulElem(ms3.Add(diffuse, specular), light.Radiance))
	ambient := ms3.Scale(ambientLevel*surf.AO, ms3.MulElem(skyZenith, surf.Albedo))
	return ms3.Add(ambient, direct)
}
