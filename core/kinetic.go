package core

import "github.com/lixenwraith/nazarene/vmath"

// Kinetic is the kinematic state of a combatant
// Velocity is intent-driven movement; Knockback is an external impulse that decays
type Kinetic struct {
	Position  vmath.Vec3F
	Facing    vmath.Vec3F // Unit XY vector
	Velocity  vmath.Vec3F // Units per second
	Knockback vmath.Vec3F // Units per second
}

// Integrate advances Position by Velocity and Knockback over dtSec
// Knockback decays exponentially by decayPerSec
func (k *Kinetic) Integrate(dtSec, decayPerSec float64) {
	step := vmath.V3FAdd(k.Velocity, k.Knockback)
	k.Position = vmath.V3FAdd(k.Position, vmath.V3FScale(step, dtSec))

	if vmath.V3FIsZero(k.Knockback) {
		k.Knockback = vmath.Vec3F{}
		return
	}
	decay := 1 - decayPerSec*dtSec
	if decay < 0 {
		decay = 0
	}
	k.Knockback = vmath.V3FScale(k.Knockback, decay)
}

// FaceToward points Facing at target on the XY plane; no-op if coincident
func (k *Kinetic) FaceToward(target vmath.Vec3F) {
	dir := vmath.Direction2D(k.Position, target)
	if vmath.V3FIsZero(dir) {
		return
	}
	k.Facing = dir
}

// Stop clears all motion
func (k *Kinetic) Stop() {
	k.Velocity = vmath.Vec3F{}
	k.Knockback = vmath.Vec3F{}
}
