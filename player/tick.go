package player

import (
	"time"

	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// Tick advances the controller by dt
// Order: timers, stamina regen, lock validation, movement state, pending attack, integration
func (p *Player) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.updateTimers(dt)
	p.regenStamina(dt)
	p.validateLock()
	p.updateMovementState()
	p.pending.advance(dt, p.resolveAttack)
	p.integrate(dt)
}

func (p *Player) updateTimers(dt time.Duration) {
	p.attackCooldown.Tick(dt)
	p.dodgeTimer.Tick(dt)
	p.invulnerable.Tick(dt)
	p.healCooldown.Tick(dt)
	p.blessing.Tick(dt)
	p.blessingCooldown.Tick(dt)
	p.radianceCooldown.Tick(dt)
	p.perfectBlock.Tick(dt)
	p.hurtTimer.Tick(dt)

	// The window opens on the tick startup expires and starts counting down on the next
	if p.parryStartup.Active() {
		if p.parryStartup.Tick(dt) {
			p.parryWindow.Set(parameter.ParryWindow)
		}
	} else {
		p.parryWindow.Tick(dt)
	}
}

func (p *Player) regenStamina(dt time.Duration) {
	if p.dodgeTimer.Active() || p.blocking || p.attackCooldown.Active() {
		return
	}
	rate := p.stats.StaminaRegen
	if p.blessing.Active() {
		rate *= parameter.PlayerBlessedRegenScale
	}
	p.vitals.Stamina.Add(rate * dt.Seconds())
}

// updateMovementState drops an interrupted guard and takes the lowest active speed constraint
func (p *Player) updateMovementState() {
	attacking := p.pending.Pending()
	p.blocking = p.blocking && !p.dodgeTimer.Active() && !attacking

	scale := 1.0
	if p.blocking {
		scale = min(scale, parameter.MoveScaleBlocking)
	}
	if attacking {
		if p.pending.Windup.Active() {
			scale = min(scale, parameter.MoveScaleWindup)
		} else {
			scale = min(scale, parameter.MoveScaleActive)
		}
	}
	if p.hurtTimer.Active() {
		scale = min(scale, parameter.MoveScaleHurt)
	}
	p.speedScale = scale

	if e, ok := p.lockTarget(); ok {
		p.kin.FaceToward(e.Position())
	}
}

func (p *Player) integrate(dt time.Duration) {
	if p.dodgeTimer.Active() {
		p.kin.Velocity = vmath.V3FScale(p.dodgeDir, p.stats.DodgeSpeed)
	} else {
		p.kin.Velocity = vmath.V3FScale(p.moveIntent, p.stats.WalkSpeed*p.speedScale)
		if !p.lock.Valid() && !vmath.V3FIsZero(p.moveIntent) {
			p.SetFacing(p.moveIntent)
		}
	}
	p.kin.Integrate(dt.Seconds(), 0)
}
