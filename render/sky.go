package render

import (
	"github.com/soypat/glgl/math/ms3"

	"github.com/jlloren/heartfield/internal/m32"
)

var (
	skyZenith  = ms3.Vec{X: 0.20, Y: 0.35, Z: 0.60}
	skyHorizon = ms3.Vec{X: 0.75, Y: 0.85, Z: 0.95}
)

// SkyColor returns the procedural sky for an escaped ray: a smoothstep blend
// from horizon to zenith over the direction's vertical component. A straight
// up direction yields the zenith color exactly.
func SkyColor(dir ms3.Vec) ms3.Vec {
	return m32.MixElem(skyHorizon, skyZenith, m32.SmoothStep(-0.1, 0.5, dir.Y))
}

// GammaEncode applies the display transfer curve pow(c, 1/2.2).
func GammaEncode(c ms3.Vec) ms3.Vec { return m32.PowElem(c, 1/2.2) }

// Tonemap compresses HDR radiance for display: Reinhard c/(c+1) per
// component, then gamma encoding. The sky branch is already low dynamic
// range and goes through GammaEncode alone.
func Tonemap(c ms3.Vec) ms3.Vec {
	c = ms3.DivElem(c, ms3.AddScalar(1, c))
	return GammaEncode(c)
}
