// Package combat holds stateless adjudication shared by enemies and the player
// It owns no state; every function takes the combatants it judges
package combat

import (
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/vmath"
)

// Roller yields uniform values in [0, 1)
type Roller interface {
	Float64() float64
}

// Source is the party credited with a hit: used for frontal checks and rewards
type Source interface {
	Position() vmath.Vec3F
	AddFaith(amount float64)
}

// Parryable is an attacker whose strike may be turned by a parry
type Parryable interface {
	CanBeParried() bool
	OnParried(source Source)
}

// Defender is the target of enemy attacks
type Defender interface {
	Position() vmath.Vec3F
	ReceiveEnemyAttack(attacker Parryable, damage, posture float64)
}

// AreaTarget is anything an area effect can strike and push
type AreaTarget interface {
	Position() vmath.Vec3F
	IsRedeemed() bool
	ReceiveHit(damage, posture float64, source Source)
	ApplyKnockback(direction vmath.Vec3F, force float64)
}

// Presenter is the fire-and-forget presentation collaborator
type Presenter interface {
	TriggerEffect(effect core.EffectType, at vmath.Vec3F)
	PlaySound(sound core.SoundType, at vmath.Vec3F)
}

// FixedRoller always returns the same value, for deterministic tests and tuning tools
type FixedRoller float64

func (r FixedRoller) Float64() float64 {
	return float64(r)
}

// SequenceRoller cycles through fixed values
type SequenceRoller struct {
	Values []float64
	next   int
}

func (r *SequenceRoller) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v
}
