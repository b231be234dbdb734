package combat

import (
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// InFrontalArc reports whether point lies within arcDegrees (full width) centred on facing
// Planar check; a point on the origin is never inside
func InFrontalArc(origin, facing, point vmath.Vec3F, arcDegrees float64) bool {
	dir := vmath.Direction2D(origin, point)
	fwd := vmath.Normalize2D(facing)
	if vmath.V3FIsZero(dir) || vmath.V3FIsZero(fwd) {
		return false
	}
	return vmath.AngleBetween2D(fwd, dir) <= arcDegrees*0.5
}

// IsFrontal reports dot(facing, toOther) > threshold on the XY plane
// A zero direction is never frontal
func IsFrontal(facing, toOther vmath.Vec3F, threshold float64) bool {
	fwd := vmath.Normalize2D(facing)
	dir := vmath.Normalize2D(toOther)
	if vmath.V3FIsZero(fwd) || vmath.V3FIsZero(dir) {
		return false
	}
	return vmath.Dot2D(fwd, dir) > threshold
}

// InRange reports dist <= attackRange + bonus
func InRange(dist, attackRange, bonus float64) bool {
	return dist <= attackRange+bonus
}

// ReachClass selects the melee bonus range applied at strike time
type ReachClass uint8

const (
	ReachStandard ReachClass = iota
	ReachSpear
	ReachBoss
)

// MeleeBonusRange returns the strike-time reach bonus
// Bosses only gain their extended reach from phase 2
func MeleeBonusRange(class ReachClass, phase int) float64 {
	switch class {
	case ReachSpear:
		return parameter.MeleeBonusRangeSpear
	case ReachBoss:
		if phase >= 2 {
			return parameter.MeleeBonusRangeBossEnraged
		}
	}
	return parameter.MeleeBonusRange
}

// NearestIndex scans items linearly and returns the index of the closest accepted one, or -1
// Strict comparison: the first-seen item wins an exact tie
func NearestIndex[T any](origin vmath.Vec3F, items []T, position func(T) vmath.Vec3F, accept func(item T, dist float64) bool) int {
	best := -1
	bestDist := 0.0
	for i, item := range items {
		d := vmath.Dist2D(origin, position(item))
		if accept != nil && !accept(item, d) {
			continue
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
