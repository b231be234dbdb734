package enemy

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// Tick advances the state machine by dt against target
// A nil target or a Redeemed enemy does nothing
func (e *Enemy) Tick(dt time.Duration, target combat.Defender) {
	if e.state == Redeemed || target == nil || dt <= 0 {
		return
	}

	e.updateBossPhase()

	e.shotCooldown.Tick(dt)
	e.dashCooldown.Tick(dt)
	e.vitals.Stamina.Add(e.profile.PoiseRegen * dt.Seconds())

	targetPos := target.Position()
	dist := vmath.Dist2D(e.kin.Position, targetPos)
	e.kin.Velocity = vmath.Vec3F{}

	switch e.state {
	case Idle:
		if dist <= e.profile.DetectionRange {
			e.transition(Chase)
		}

	case Chase:
		e.kin.FaceToward(targetPos)
		if dist > e.profile.DetectionRange*parameter.EnemyLeashFactor {
			e.transition(Idle)
		} else {
			e.chase(dist, dt, targetPos)
		}

	case Windup:
		e.processWindup(dt, dist, target, false)

	case Casting:
		e.processWindup(dt, dist, target, true)

	case Blocking, Recover, Staggered, Parried:
		if e.stateTimer.Tick(dt) || !e.stateTimer.Active() {
			if e.state == Parried {
				e.enterStaggered(scaleDuration(e.profile.Stagger, parameter.EnemyParriedStaggerFactor))
			} else {
				e.transition(Chase)
			}
		}

	case Retreat:
		e.moveAway(targetPos)
		if dist >= e.profile.MinimumRange+parameter.RetreatExitSlack {
			e.transition(Chase)
		}

	case Strafe:
		e.strafe(targetPos)
		if e.stateTimer.Tick(dt) || !e.stateTimer.Active() {
			e.transition(Chase)
		}
	}

	e.kin.Integrate(dt.Seconds(), parameter.KnockbackDecayPerSecond)
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

// updateBossPhase derives phase from health and flags reinforcement waves once per phase
func (e *Enemy) updateBossPhase() {
	if !e.isBoss() {
		return
	}
	next := combat.PhaseFromHealthRatio(e.vitals.Health.Ratio())
	if next == e.phase {
		return
	}
	prev := e.phase
	e.phase = next
	e.log.Debug("boss phase changed", zap.Int("from", prev), zap.Int("to", next))
	event.Emit(e.events, event.EventBossPhaseChanged, &event.BossPhasePayload{Handle: e.handle, From: prev, To: next})

	if next >= 2 && !e.phase2Wave {
		e.phase2Wave = true
		event.Emit(e.events, event.EventBossReinforcements, &event.BossPhasePayload{Handle: e.handle, From: prev, To: 2})
	}
	if next >= 3 && !e.phase3Wave {
		e.phase3Wave = true
		event.Emit(e.events, event.EventBossReinforcements, &event.BossPhasePayload{Handle: e.handle, From: prev, To: 3})
	}
}

// chase runs the archetype-specific approach behaviour
func (e *Enemy) chase(dist float64, dt time.Duration, targetPos vmath.Vec3F) {
	p := &e.profile
	switch e.archetype {
	case Ranged:
		switch {
		case dist < p.MinimumRange:
			e.transition(Retreat)
		case dist <= p.AttackRange && !e.shotCooldown.Active():
			e.BeginCastAttack()
		case dist > p.AttackRange*parameter.RangedApproachFactor:
			e.moveToward(targetPos, e.EffectiveMoveSpeed())
		default:
			if e.transition(Strafe) {
				span := float64(parameter.RangedStrafeMax - parameter.RangedStrafeMin)
				e.stateTimer.Set(parameter.RangedStrafeMin + time.Duration(span*e.rng.Float64()))
				e.strafeSign = -1
				if e.rng.Float64() > 0.5 {
					e.strafeSign = 1
				}
			}
		}

	case Demon:
		if dist <= p.AttackRange*parameter.DemonEngageFactor {
			if !e.dashCooldown.Active() && e.rng.Float64() < parameter.DemonDashChance {
				e.dash(targetPos, parameter.DemonDashSpeedScale)
				e.dashCooldown.Set(parameter.DemonDashCooldown)
			}
			e.BeginMeleeAttack()
		} else {
			e.moveToward(targetPos, e.EffectiveMoveSpeed()*parameter.DemonChaseSpeed)
		}

	case Boss:
		switch {
		case e.phase >= 2 && dist > p.AttackRange+parameter.BossCastDistanceSlack &&
			!e.shotCooldown.Active() && e.rng.Float64() < parameter.BossCastChance:
			e.BeginCastAttack()
		case dist <= p.AttackRange+parameter.BossMeleeSlack:
			e.BeginMeleeAttack()
		default:
			e.moveToward(targetPos, e.EffectiveMoveSpeed())
		}
		if e.phase >= 3 && !e.dashCooldown.Active() &&
			dist > p.AttackRange*parameter.BossDashRangeFactor && dist < p.DetectionRange &&
			e.rng.Float64() < parameter.BossDashFrequency*dt.Seconds() {
			e.dash(targetPos, parameter.BossDashSpeedScale)
			e.dashCooldown.Set(parameter.BossDashCooldown)
			event.Emit(e.events, event.EventArenaHazard, &event.HazardPayload{Handle: e.handle, At: e.kin.Position})
			event.EmitEffect(e.events, core.EffectArenaHazard, e.kin.Position)
		}

	default:
		if dist <= p.AttackRange {
			e.BeginMeleeAttack()
		} else {
			e.moveToward(targetPos, e.EffectiveMoveSpeed())
		}
	}
}

// BeginMeleeAttack starts a melee telegraph; only accepted from Chase
func (e *Enemy) BeginMeleeAttack() bool {
	if e.state != Chase || !e.transition(Windup) {
		return false
	}
	e.armWindup(e.EffectiveWindup())
	event.EmitSound(e.events, core.SoundSwing, e.ahead(100))
	return true
}

// BeginCastAttack starts a ranged telegraph; only accepted from Chase
func (e *Enemy) BeginCastAttack() bool {
	if e.state != Chase || !e.transition(Casting) {
		return false
	}
	e.armWindup(max(parameter.EnemyMinCastWindup, e.EffectiveWindup()+parameter.EnemyCastWindupExtra))
	event.EmitSound(e.events, core.SoundSwing, e.ahead(130))
	return true
}

func (e *Enemy) armWindup(d time.Duration) {
	e.windupDuration = d
	e.windupElapsed = 0
	e.attackResolved = false
	e.stateTimer.Set(d)
}

// processWindup advances a telegraph, resolving the strike exactly once
// Resolution precedes the Recover transition so a large dt still strikes
func (e *Enemy) processWindup(dt time.Duration, dist float64, target combat.Defender, casting bool) {
	e.kin.FaceToward(target.Position())
	e.stateTimer.Tick(dt)
	e.windupElapsed += dt

	strikeAt := scaleDuration(e.windupDuration, vmath.Clamp(e.profile.StrikeRatio, parameter.StrikeTimingMin, parameter.StrikeTimingMax))
	if !e.attackResolved && e.windupElapsed >= strikeAt {
		e.attackResolved = true
		if casting {
			e.resolveCast(dist, target)
		} else {
			e.resolveMelee(dist, target)
		}
		if e.state == Redeemed {
			return
		}
	}

	// A parry during resolution moves the enemy out of its windup
	if e.state != Windup && e.state != Casting {
		return
	}
	if !e.stateTimer.Active() {
		if e.transition(Recover) {
			e.stateTimer.Set(e.EffectiveRecovery())
		}
	}
}

func (e *Enemy) resolveMelee(dist float64, target combat.Defender) {
	damage, posture := e.EffectiveDamage(), e.EffectivePosture()
	connected := combat.InRange(dist, e.profile.AttackRange, combat.MeleeBonusRange(e.reachClass(), e.scalingPhase()))
	if connected {
		target.ReceiveEnemyAttack(e, damage, posture)
	}
	event.Emit(e.events, event.EventEnemyStrike, &event.EnemyStrikePayload{
		Handle: e.handle, Damage: damage, Posture: posture, Connected: connected,
	})
}

func (e *Enemy) resolveCast(dist float64, target combat.Defender) {
	damage := e.EffectiveDamage() * parameter.CastDamageFactor
	posture := e.EffectivePosture() * parameter.CastPostureFactor
	connected := dist <= e.profile.AttackRange*parameter.CastReachFactor
	if connected {
		target.ReceiveEnemyAttack(e, damage, posture)
	}
	e.shotCooldown.Set(time.Duration(float64(parameter.CastCooldown) / combat.PhaseSpeedScale(e.scalingPhase())))
	event.Emit(e.events, event.EventEnemyStrike, &event.EnemyStrikePayload{
		Handle: e.handle, Damage: damage, Posture: posture, Ranged: true, Connected: connected,
	})
}

func (e *Enemy) ahead(distance float64) vmath.Vec3F {
	return vmath.V3FAdd(e.kin.Position, vmath.V3FScale(e.kin.Facing, distance))
}

func (e *Enemy) moveToward(targetPos vmath.Vec3F, speed float64) {
	dir := vmath.Direction2D(e.kin.Position, targetPos)
	if vmath.V3FIsZero(dir) {
		return
	}
	e.kin.Velocity = vmath.V3FScale(dir, speed)
}

func (e *Enemy) moveAway(targetPos vmath.Vec3F) {
	dir := vmath.Direction2D(targetPos, e.kin.Position)
	if vmath.V3FIsZero(dir) {
		return
	}
	e.kin.Velocity = vmath.V3FScale(dir, e.EffectiveMoveSpeed())
	e.kin.FaceToward(targetPos)
}

func (e *Enemy) strafe(targetPos vmath.Vec3F) {
	fwd := vmath.Direction2D(e.kin.Position, targetPos)
	if vmath.V3FIsZero(fwd) {
		return
	}
	lateral := vmath.V3FScale(vmath.Perp2D(fwd), e.strafeSign)
	dir := vmath.Normalize2D(vmath.V3FAdd(lateral, vmath.V3FScale(fwd, parameter.StrafeForwardBias)))
	e.kin.Velocity = vmath.V3FScale(dir, e.EffectiveMoveSpeed()*parameter.StrafeSpeedFactor)
	e.kin.FaceToward(targetPos)
}

// dash launches toward the target, overriding any current knockback
func (e *Enemy) dash(targetPos vmath.Vec3F, speedScale float64) {
	dir := vmath.Direction2D(e.kin.Position, targetPos)
	if vmath.V3FIsZero(dir) {
		return
	}
	e.kin.Knockback = vmath.V3FScale(dir, e.EffectiveMoveSpeed()*speedScale)
}
