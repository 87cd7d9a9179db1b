package heartfield

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Material identifies which primitive a distance sample belongs to.
type Material int8

// MaterialNone is the sentinel for rays that escaped the scene without
// hitting anything. It has no Surface.
const (
	MaterialNone Material = iota - 1
	MaterialGround
	MaterialSphere
	MaterialBox
	MaterialTorus
	MaterialHeart
)

// Surface carries the static shading parameters of a material.
type Surface struct {
	Albedo    ms3.Vec
	Metallic  float32
	Roughness float32
	AO        float32
}

var surfaces = [...]Surface{
	MaterialGround: {Albedo: ms3.Vec{X: 0.55, Y: 0.55, Z: 0.55}, Metallic: 0, Roughness: 0.9, AO: 1},
	MaterialSphere: {Albedo: ms3.Vec{X: 0.9, Y: 0.75, Z: 0.3}, Metallic: 0.9, Roughness: 0.2, AO: 1},
	MaterialBox:    {Albedo: ms3.Vec{X: 0.2, Y: 0.45, Z: 0.8}, Metallic: 0, Roughness: 0.6, AO: 1},
	MaterialTorus:  {Albedo: ms3.Vec{X: 0.3, Y: 0.7, Z: 0.4}, Metallic: 0.4, Roughness: 0.35, AO: 1},
	MaterialHeart:  {Albedo: ms3.Vec{X: 0.8, Y: 0.05, Z: 0.08}, Metallic: 0.1, Roughness: 0.25, AO: 1},
}

// Surface returns the shading parameters of m. It panics for MaterialNone:
// misses are resolved to the sky before shading ever happens.
func (m Material) Surface() Surface { return surfaces[m] }

// Sample pairs a signed distance estimate with the material that produced it.
type Sample struct {
	Dist float32
	ID   Material
}

type primitiveKind uint8

const (
	kindGround primitiveKind = iota
	kindSphere
	kindBox
	kindTorus
	kindHeart
)

// Primitive is one scene entry behind the (point, time) → (distance,
// material) contract. The variant set is closed and dispatched by tag;
// adding a primitive means adding a case to evaluate, not a new scene
// function.
type Primitive struct {
	kind   primitiveKind
	id     Material
	center ms3.Vec
	// dims meaning per kind. sphere: X is the radius. box: half extents.
	// torus: X is the outer radius, Y the ring radius.
	dims ms3.Vec
}

// Ground returns the infinite plane y=0.
func Ground() Primitive { return Primitive{kind: kindGround, id: MaterialGround} }

// Sphere returns a static sphere primitive.
func Sphere(center ms3.Vec, r float32) (Primitive, error) {
	if r <= 0 {
		return Primitive{}, errors.New("zero or negative sphere radius")
	}
	return Primitive{kind: kindSphere, id: MaterialSphere, center: center, dims: ms3.Vec{X: r}}, nil
}

// Box returns a static axis-aligned box primitive with the given half
// extents.
func Box(center, half ms3.Vec) (Primitive, error) {
	if half.X <= 0 || half.Y <= 0 || half.Z <= 0 {
		return Primitive{}, errors.New("zero or negative box dimension")
	}
	return Primitive{kind: kindBox, id: MaterialBox, center: center, dims: half}, nil
}

// Torus returns a static torus primitive lying flat in the xz plane.
// rGreater is the outer radius, rRing the tube radius.
func Torus(center ms3.Vec, rGreater, rRing float32) (Primitive, error) {
	if rRing <= 0 || rGreater <= rRing {
		return Primitive{}, errors.New("invalid torus parameter")
	}
	return Primitive{kind: kindTorus, id: MaterialTorus, center: center, dims: ms3.Vec{X: rGreater, Y: rRing}}, nil
}

// BeatingHeart returns the animated heart primitive centered at the origin.
func BeatingHeart() Primitive { return Primitive{kind: kindHeart, id: MaterialHeart} }

// Translate returns a copy of the primitive moved by v.
func (pr Primitive) Translate(v ms3.Vec) Primitive {
	pr.center = ms3.Add(pr.center, v)
	return pr
}

// ID returns the material tag of the primitive.
func (pr Primitive) ID() Material { return pr.id }

// gradEpsilon guards the implicit-to-SDF division where the heart gradient
// degenerates (the q=0, z=0 equator circle).
const gradEpsilon = 1e-8

func (pr Primitive) evaluate(p ms3.Vec, t float32) float32 {
	p = ms3.Sub(p, pr.center)
	switch pr.kind {
	case kindGround:
		return p.Y
	case kindSphere:
		return ms3.Norm(p) - pr.dims.X
	case kindBox:
		q := ms3.Sub(ms3.AbsElem(p), pr.dims)
		return ms3.Norm(ms3.MaxElem(q, ms3.Vec{})) + math32.Min(math32.Max(q.X, math32.Max(q.Y, q.Z)), 0)
	case kindTorus:
		q1 := math32.Hypot(p.X, p.Z) - (pr.dims.X - pr.dims.Y)
		return math32.Hypot(q1, p.Y) - pr.dims.Y
	case kindHeart:
		def, scales := definitionSpace(p, t)
		// F/‖∇F‖ alone is only admissible for isometric transforms;
		// under the anisotropic beat the gradient must be divided by
		// the scales element-wise before taking its norm.
		grad := ms3.DivElem(heartGrad(def), scales)
		return heartPoly(def) / (ms3.Norm(grad) + gradEpsilon)
	}
	return math32.MaxFloat32
}

// Scene is an ordered set of primitives evaluated as a min-union distance
// field. Declaration order matters only for ties, which resolve to the
// earliest primitive.
type Scene struct {
	prims []Primitive
}

// NewScene builds a scene from primitives in declaration order.
func NewScene(prims ...Primitive) *Scene { return &Scene{prims: prims} }

// HeartScene is the minimal scene: the beating heart alone, centered at the
// origin.
func HeartScene() *Scene { return NewScene(BeatingHeart()) }

// ShowcaseScene places every primitive variant on a ground plane around a
// raised beating heart.
func ShowcaseScene() *Scene {
	sphere, _ := Sphere(ms3.Vec{X: -2.3, Y: 0.6, Z: -0.6}, 0.6)
	box, _ := Box(ms3.Vec{X: 2.3, Y: 0.5, Z: -0.9}, ms3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	torus, _ := Torus(ms3.Vec{X: 0, Y: 0.25, Z: -2.6}, 0.9, 0.25)
	heart := BeatingHeart().Translate(ms3.Vec{Y: 1.15})
	return NewScene(Ground(), sphere, box, torus, heart)
}

// Evaluate returns the scene distance sample at world point p and time t:
// the minimum signed distance across all primitives and the material of the
// minimizer.
func (s *Scene) Evaluate(p ms3.Vec, t float32) Sample {
	best := Sample{Dist: math32.MaxFloat32, ID: MaterialNone}
	for _, pr := range s.prims {
		if d := pr.evaluate(p, t); d < best.Dist {
			best = Sample{Dist: d, ID: pr.id}
		}
	}
	return best
}

// normalEpsilon is the central-difference step of the generic normal path.
const normalEpsilon = 1e-3

// Normal returns the unit surface normal at a hit point. The heart reuses
// its analytic gradient, un-scaled by the beat and permuted back to world
// axes, which saves the six field evaluations of the generic path. Any other
// material falls back to central differences of the whole field.
func (s *Scene) Normal(p ms3.Vec, id Material, t float32) ms3.Vec {
	if id == MaterialHeart {
		for _, pr := range s.prims {
			if pr.kind != kindHeart {
				continue
			}
			def, scales := definitionSpace(ms3.Sub(p, pr.center), t)
			g := ms3.DivElem(heartGrad(def), scales)
			// Undo the y/z swap applied going into definition space.
			return ms3.Unit(ms3.Vec{X: g.X, Y: g.Z, Z: g.Y})
		}
	}
	const h = normalEpsilon
	g := ms3.Vec{
		X: s.Evaluate(ms3.Add(p, ms3.Vec{X: h}), t).Dist - s.Evaluate(ms3.Sub(p, ms3.Vec{X: h}), t).Dist,
		Y: s.Evaluate(ms3.Add(p, ms3.Vec{Y: h}), t).Dist - s.Evaluate(ms3.Sub(p, ms3.Vec{Y: h}), t).Dist,
		Z: s.Evaluate(ms3.Add(p, ms3.Vec{Z: h}), t).Dist - s.Evaluate(ms3.Sub(p, ms3.Vec{Z: h}), t).Dist,
	}
	return ms3.Unit(g)
}
