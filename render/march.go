package render

import (
	"github.com/soypat/glgl/math/ms3"

	"github.com/jlloren/heartfield"
)

// Sphere tracing limits. The field is not globally Lipschitz-1 near the
// anisotropically scaled heart, so both caps are required termination
// guarantees, not tuning knobs.
const (
	// MaxSteps caps the number of field samples per ray.
	MaxSteps = 100
	// MaxDist is the travel cap beyond which a ray counts as escaped.
	MaxDist = 100.0
	// HitThreshold is the distance under which a sample counts as a hit.
	HitThreshold = 1e-3
)

// March sphere-traces a ray through the scene at the given time. It advances
// by the sampled distance until the sample drops under HitThreshold,
// returning the travelled distance and the hit material. A ray that exceeds
// MaxDist or exhausts MaxSteps reports heartfield.MaterialNone.
func March(s *heartfield.Scene, origin, dir ms3.Vec, time float32) (float32, heartfield.Material) {
	var t float32
	for i := 0; i < MaxSteps; i++ {
		sm := s.Evaluate(ms3.Add(origin, ms3.Scale(t, dir)), time)
		if sm.Dist < HitThreshold {
			return t, sm.ID
		}
		t += sm.Dist
		if t > MaxDist {
			break
		}
	}
	return t, heartfield.MaterialNone
}
