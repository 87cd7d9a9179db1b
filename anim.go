package heartfield

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// BeatsPerMinute is the heartbeat rate of the animated surface.
const BeatsPerMinute = 30

const (
	beatAmplitude = 0.15
	// volumeEpsilon stabilizes the volume-preserving third scale so it
	// never divides by zero.
	volumeEpsilon = 1e-7
)

// BeatScales returns the anisotropic definition-space scale triple at time t
// in seconds. The two horizontal axes contract together by the beat cycle
// and the vertical axis is solved as the reciprocal of their product, so
// sx·sy·sz = 1 up to volumeEpsilon at all times. The triple is periodic with
// period 60/BeatsPerMinute seconds.
func BeatScales(t float32) ms3.Vec {
	const omega = 2 * math32.Pi * BeatsPerMinute / 60
	cycle := (math32.Cos(omega*t) + 1) / 2
	s := 1 - beatAmplitude*(1-cycle)
	return ms3.Vec{X: s, Y: s, Z: 1 / (s*s + volumeEpsilon)}
}

// definitionSpace maps a world point into the frame heartPoly is written in
// and applies the heartbeat. World y is the heart's vertical, the
// polynomial's z, so the permutation swaps y and z and is its own inverse.
// The scale triple is returned alongside the point: the distance query needs
// it to correct the gradient norm and the normal path needs it to un-scale
// the gradient.
func definitionSpace(p ms3.Vec, t float32) (def, scales ms3.Vec) {
	scales = BeatScales(t)
	def = ms3.DivElem(ms3.Vec{X: p.X, Y: p.Z, Z: p.Y}, scales)
	return def, scales
}
