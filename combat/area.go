package combat

import "github.com/lixenwraith/nazarene/vmath"

// AreaHit describes one area-of-effect application
type AreaHit struct {
	Origin    vmath.Vec3F
	Radius    float64 // 3D distance
	Damage    float64
	Posture   float64
	Knockback float64
}

// ApplyArea strikes every non-redeemed target within radius and pushes it away from origin
// Knockback direction is planar; a target on the origin is hit but not pushed
// Returns the number of targets struck
func ApplyArea[T AreaTarget](hit AreaHit, targets []T, source Source) int {
	n := 0
	for _, t := range targets {
		if t.IsRedeemed() {
			continue
		}
		pos := t.Position()
		if vmath.V3FDist(pos, hit.Origin) > hit.Radius {
			continue
		}
		t.ReceiveHit(hit.Damage, hit.Posture, source)
		t.ApplyKnockback(vmath.Direction2D(hit.Origin, pos), hit.Knockback)
		n++
	}
	return n
}
