package heartfield

import (
	"github.com/soypat/glgl/math/ms3"
)

// Coefficients of the implicit heart surface
//
//	F(p) = (x² + a·y² + z² − 1)³ − x²·z³ − b·y²·z³
//
// The zero set of F is the heart. Two coefficient sets circulate for b
// (9/80 and 9/200); this package uses 9/80.
const (
	heartA = 9.0 / 4.0
	heartB = 9.0 / 80.0
)

// heartPoly evaluates F at a point in definition space, the canonical frame
// the polynomial is written in: z is the heart's vertical axis, y its thin
// depth axis. Negative inside, positive outside.
func heartPoly(p ms3.Vec) float32 {
	q := p.X*p.X + heartA*p.Y*p.Y + p.Z*p.Z - 1
	z3 := p.Z * p.Z * p.Z
	return q*q*q - (p.X*p.X+heartB*p.Y*p.Y)*z3
}

// heartGrad is the exact gradient of heartPoly, from the closed-form partial
// derivatives. Finite differencing is never used on this surface: the
// analytic gradient is what keeps the distance estimate and the normals
// stable at low step counts.
//
//	∂F/∂x = 6x·q² − 2x·z³
//	∂F/∂y = 6a·y·q² − 2b·y·z³
//	∂F/∂z = 6z·q² − 3z²·(x² + b·y²)
//
// with q = x² + a·y² + z² − 1. The gradient vanishes on the equator circle
// q=0, z=0 (F has a triple root there); callers guard the division.
func heartGrad(p ms3.Vec) ms3.Vec {
	q := p.X*p.X + heartA*p.Y*p.Y + p.Z*p.Z - 1
	q2 := q * q
	z2 := p.Z * p.Z
	z3 := z2 * p.Z
	return ms3.Vec{
		X: 6*p.X*q2 - 2*p.X*z3,
		Y: 6*heartA*p.Y*q2 - 2*heartB*p.Y*z3,
		Z: 6*p.Z*q2 - 3*z2*(p.X*p.X+heartB*p.Y*p.Y),
	}
}
