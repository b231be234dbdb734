package vmath

import (
	"math"
)

// Vec3F is a float64 world-space vector
// Z is height; combat geometry works on the XY plane unless noted
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FIsZero reports whether all components are within Epsilon of zero
func V3FIsZero(v Vec3F) bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon && math.Abs(v.Z) < Epsilon
}

// V3FDist is full 3D distance, used by area effects
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FDistSq is squared 3D distance for nearest-site comparisons
func V3FDistSq(a, b Vec3F) float64 {
	return V3FMagSq(V3FSub(a, b))
}

// Planar (XY) helpers

// Dist2D is distance on the XY plane, ignoring height
func Dist2D(a, b Vec3F) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Flatten drops the Z component
func Flatten(v Vec3F) Vec3F {
	return Vec3F{X: v.X, Y: v.Y}
}

// Normalize2D returns the unit XY direction of v, or zero if v has no planar length
func Normalize2D(v Vec3F) Vec3F {
	return V3FNormalize(Flatten(v))
}

// Dot2D is the XY dot product
func Dot2D(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Direction2D is the unit XY direction from -> to
func Direction2D(from, to Vec3F) Vec3F {
	return Normalize2D(V3FSub(to, from))
}

// Perp2D rotates v by +90 degrees on the XY plane
func Perp2D(v Vec3F) Vec3F {
	return Vec3F{X: -v.Y, Y: v.X}
}

// AngleBetween2D returns the angle in degrees between two unit XY vectors
// Dot is clamped to [-1, 1] before acos
func AngleBetween2D(a, b Vec3F) float64 {
	d := Clamp(Dot2D(a, b), -1, 1)
	return math.Acos(d) * 180 / math.Pi
}
