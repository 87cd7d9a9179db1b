// Package heartfield models an animated, implicitly defined heart as a
// signed distance field. The heart is the zero set of a sextic polynomial,
// beating under a volume-preserving anisotropic scale, queried alongside a
// small closed set of static primitives through a single
// (point, time) → (distance, material) contract. Rendering of the field
// lives in the render subpackage.
package heartfield
