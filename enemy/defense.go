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

// CanBeParried is true only mid-Windup with the windup ratio inside the parry band
func (e *Enemy) CanBeParried() bool {
	if !e.profile.Capabilities.Has(CapCanParry) || e.state != Windup || e.windupDuration <= 0 {
		return false
	}
	ratio := combat.WindupRatio(e.windupElapsed, e.windupDuration)
	start, end := e.EffectiveParryWindow()
	return ratio >= start && ratio <= end
}

// OnParried converts the current attack into a vulnerability window and rewards source
func (e *Enemy) OnParried(source combat.Source) {
	if e.state == Redeemed || !e.transition(Parried) {
		return
	}
	vuln := e.profile.ParryVulnerability
	if e.isBoss() {
		vuln = scaleDuration(vuln, parameter.BossParryVulnerabilityScale)
	}
	e.stateTimer.Set(vuln)
	e.vitals.Stamina.Set(e.vitals.Stamina.Max * parameter.EnemyParriedPoiseRatio)

	if source != nil {
		source.AddFaith(parameter.ParryFaithReward)
	}
	event.Emit(e.events, event.EventEnemyParried, e.enemyPayload())
}

// ReceiveHit is the single hit-reception entry point
// A MeleeShield may absorb a frontal hit; otherwise health and poise drop, poise break staggers
func (e *Enemy) ReceiveHit(damage, posture float64, source combat.Source) {
	if e.state == Redeemed {
		return
	}
	if e.tryShieldBlock(source, posture) {
		return
	}

	e.vitals.Health.Drain(damage)
	e.vitals.Stamina.Drain(posture)
	e.cue(core.SoundHit, core.EffectHitSpark, e.kin.Position)

	if e.vitals.Stamina.Empty() {
		stagger := e.profile.Stagger
		if e.isBoss() {
			stagger = scaleDuration(stagger, parameter.BossStaggerScale)
		}
		e.enterStaggered(stagger)
		e.vitals.Stamina.Fill()
	}

	if e.vitals.Health.Empty() {
		e.BecomeRedeemed(source, true)
	}
}

// tryShieldBlock rolls the shield for eligible MeleeShield states against a frontal source
func (e *Enemy) tryShieldBlock(source combat.Source, posture float64) bool {
	if e.archetype != MeleeShield || source == nil {
		return false
	}
	if e.state != Chase && e.state != Idle && e.state != Recover {
		return false
	}
	if e.rng.Float64() > e.profile.ShieldBlockChance {
		return false
	}
	toAttacker := vmath.Flatten(vmath.V3FSub(source.Position(), e.kin.Position))
	if !combat.IsFrontal(e.kin.Facing, toAttacker, parameter.ShieldFrontalDotThreshold) {
		return false
	}
	if !e.transition(Blocking) {
		return false
	}

	e.vitals.Stamina.Drain(posture * parameter.ShieldBlockPoiseFactor)
	e.stateTimer.Set(parameter.EnemyShieldBlockDuration)
	e.cue(core.SoundClang, core.EffectShieldSpark, e.kin.Position)
	event.Emit(e.events, event.EventShieldBlock, e.enemyPayload())
	return true
}

// ReceiveRiposte applies raw damage to a Parried or Staggered enemy, bypassing shield and poise
func (e *Enemy) ReceiveRiposte(damage float64, source combat.Source) {
	if e.state != Parried && e.state != Staggered {
		return
	}
	e.vitals.Health.Drain(damage)
	e.cue(core.SoundHit, core.EffectHitSpark, e.kin.Position)
	if e.vitals.Health.Empty() {
		e.BecomeRedeemed(source, true)
		return
	}
	e.enterStaggered(e.profile.Stagger)
}

func (e *Enemy) enterStaggered(d time.Duration) {
	if !e.transition(Staggered) {
		return
	}
	e.stateTimer.Set(d)
	e.windupElapsed = 0
	e.windupDuration = 0
	event.Emit(e.events, event.EventEnemyStaggered, e.enemyPayload())
}

// ApplyKnockback launches the enemy along the planar direction, replacing current knockback
func (e *Enemy) ApplyKnockback(direction vmath.Vec3F, force float64) {
	if e.state == Redeemed {
		return
	}
	dir := vmath.Normalize2D(direction)
	if vmath.V3FIsZero(dir) {
		return
	}
	e.kin.Knockback = vmath.V3FScale(dir, force)
}

// BecomeRedeemed enters the terminal state, disabling collision and movement
// With reward, the source gains the faith reward and EventEnemyRedeemed is emitted
func (e *Enemy) BecomeRedeemed(source combat.Source, reward bool) {
	if e.state == Redeemed || !e.transition(Redeemed) {
		return
	}
	e.vitals.Health.Set(0)
	e.stateTimer.Clear()
	e.kin.Stop()
	e.collidable = false
	e.hidden = true
	e.cue(core.SoundRedeemed, core.EffectRedemptionLight, e.kin.Position)
	e.log.Debug("enemy redeemed", zap.Bool("reward", reward))

	if !reward {
		return
	}
	if source != nil {
		source.AddFaith(e.profile.FaithReward)
	}
	event.Emit(e.events, event.EventEnemyRedeemed, &event.EnemyRedeemedPayload{
		Handle:      e.handle,
		SpawnID:     e.spawnID,
		FaithReward: e.profile.FaithReward,
	})
}

// ResetToSpawn is an external hard reset: full vitals, Idle, all timers zero
// It revives a Redeemed enemy
func (e *Enemy) ResetToSpawn() {
	e.kin = core.Kinetic{Position: e.spawnPosition, Facing: e.spawnFacing}
	e.vitals.Restore()
	e.phase = 1
	e.clearTransient()
	e.collidable = true
	e.hidden = false
	e.forceState(Idle)
}

func (e *Enemy) clearTransient() {
	e.stateTimer.Clear()
	e.shotCooldown.Clear()
	e.dashCooldown.Clear()
	e.windupElapsed = 0
	e.windupDuration = 0
	e.attackResolved = false
	e.phase2Wave = false
	e.phase3Wave = false
	e.kin.Stop()
}

// clampedPhase keeps snapshot phases inside 1..3
func clampedPhase(p int) int {
	return int(vmath.Clamp(float64(p), 1, 3))
}

