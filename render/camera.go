package render

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// worldUp is the fixed reference for the camera basis.
var worldUp = ms3.Vec{Y: 1}

// Camera is the per-frame view supplied by the host: a position, a look-at
// target and a zoom scalar acting as a field-of-view proxy (smaller is
// wider). The host must keep the view direction away from ±90° elevation;
// a forward vector parallel to worldUp leaves the basis undefined and is
// deliberately not guarded here.
type Camera struct {
	Pos    ms3.Vec
	LookAt ms3.Vec
	Zoom   float32
}

// Ray returns the unit world-space ray direction through the normalized
// screen coordinate uv, whose vertical extent spans [-1, 1] with the
// horizontal scaled by aspect ratio.
func (c Camera) Ray(uv ms2.Vec) ms3.Vec {
	forward := ms3.Unit(ms3.Sub(c.LookAt, c.Pos))
	right := ms3.Unit(ms3.Cross(worldUp, forward))
	up := ms3.Cross(forward, right)
	dir := ms3.Scale(c.Zoom, forward)
	dir = ms3.Add(dir, ms3.Scale(uv.X, right))
	dir = ms3.Add(dir, ms3.Scale(uv.Y, up))
	return ms3.Unit(dir)
}
