// Package m32 holds float32 scalar and small vector helpers shared by the
// heartfield packages. The calling conventions mirror GLSL builtins.
package m32

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate(v float32) float32 { return Clamp(v, 0, 1) }

// Mix linearly interpolates between x and y by a.
func Mix(x, y, a float32) float32 { return x*(1-a) + y*a }

// SmoothStep is the GLSL hermite step between edges e0 and e1.
func SmoothStep(e0, e1, x float32) float32 {
	t := Saturate((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// MixElem interpolates x and y element-wise by a. Mix(x, y, 1) returns y
// exactly.
func MixElem(x, y ms3.Vec, a float32) ms3.Vec {
	return ms3.Add(ms3.Scale(1-a, x), ms3.Scale(a, y))
}

// PowElem raises each element of v to the power e.
func PowElem(v ms3.Vec, e float32) ms3.Vec {
	return ms3.Vec{
		X: math32.Pow(v.X, e),
		Y: math32.Pow(v.Y, e),
		Z: math32.Pow(v.Z, e),
	}
}
