package player

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
	"github.com/lixenwraith/nazarene/vmath"
)

// StartBlock raises the guard and opens the perfect-block window
func (p *Player) StartBlock() {
	p.blocking = true
	p.perfectBlock.Set(parameter.PerfectBlockWindow)
}

// StopBlock lowers the guard
func (p *Player) StopBlock() {
	p.blocking = false
}

// ToggleBlock flips the guard, for inputs without key release events
func (p *Player) ToggleBlock() {
	if p.blocking {
		p.StopBlock()
		return
	}
	p.StartBlock()
}

// TryDodge launches along dir, or facing when dir is zero
// The dodge cancels a pending attack and grants a short invulnerability window
func (p *Player) TryDodge(dir vmath.Vec3F) bool {
	if p.busy() || !p.vitals.Stamina.Spend(p.stats.DodgeStamina) {
		return false
	}
	d := vmath.Normalize2D(dir)
	if vmath.V3FIsZero(d) {
		d = p.kin.Facing
	}
	p.dodgeDir = d
	p.pending.clear()
	p.attackCooldown.Set(parameter.DodgeCooldown)
	p.dodgeTimer.Set(parameter.DodgeDuration)
	p.invulnerable.Set(parameter.DodgeInvulnerable)
	event.EmitSound(p.events, core.SoundSwing, p.kin.Position)
	return true
}

// TryParry pays the stamina cost up front and arms the startup delay
// The window opens only when startup expires, whatever the outcome
func (p *Player) TryParry() bool {
	if p.busy() || !p.vitals.Stamina.Spend(parameter.ParryStamina) {
		return false
	}
	p.attackCooldown.Set(parameter.ParryCooldown)
	p.parryStartup.Set(parameter.ParryStartup)
	p.parryWindow.Clear()
	event.EmitSound(p.events, core.SoundSwing, p.kin.Position)
	return true
}

// ReceiveEnemyAttack adjudicates an incoming enemy strike against the defense windows
// Order: invulnerability, parry, blessing scaling, block, then health damage
func (p *Player) ReceiveEnemyAttack(attacker combat.Parryable, damage, posture float64) {
	if p.invulnerable.Active() {
		return
	}

	if p.parryWindow.Active() && attacker != nil && attacker.CanBeParried() {
		attacker.OnParried(p)
		p.AddFaith(parameter.PlayerParryFaith)
		p.parryWindow.Clear()
		p.cue(core.SoundParry, core.EffectParryFlash, p.ahead(parameter.LightAttackCueOffset))
		event.Emit(p.events, event.EventPlayerParry, nil)
		return
	}

	if p.blessing.Active() {
		damage *= parameter.BlessingDamageScale
		posture *= parameter.BlessingPostureScale
	}

	if p.blocking && p.vitals.Stamina.Current > 0 {
		loss := posture * parameter.BlockStaminaFactor
		perfect := p.perfectBlock.Active()
		if perfect {
			loss *= parameter.PerfectBlockStaminaFactor
			p.AddFaith(parameter.PerfectBlockFaith)
			event.Emit(p.events, event.EventPerfectBlock, nil)
		}
		p.vitals.Stamina.Drain(loss)
		p.cue(core.SoundClang, core.EffectShieldSpark, p.ahead(parameter.LightAttackCueOffset))
		if p.vitals.Stamina.Empty() && !perfect {
			p.applyHealthDamage(damage * parameter.BlockChipFactor)
		}
		return
	}

	p.applyHealthDamage(damage)
}

func (p *Player) applyHealthDamage(amount float64) {
	p.vitals.Health.Drain(amount)
	p.hurtTimer.Set(parameter.HurtDuration)
	p.cue(core.SoundHit, core.EffectHitSpark, p.kin.Position)
	event.Emit(p.events, event.EventPlayerHurt, &event.PlayerHurtPayload{
		Damage: amount,
		Health: p.vitals.Health.Current,
	})
	if p.vitals.Health.Current <= parameter.PlayerDefeatHealthThreshold {
		p.HandleDefeat()
	}
}

// HandleDefeat notifies progression and respawns at the nearest prayer site,
// or at the fallback point with full vitals when no site exists
func (p *Player) HandleDefeat() {
	p.progression.NotifyDefeated()
	event.EmitSound(p.events, core.SoundDefeat, p.kin.Position)

	site, ok := p.nearestSite()
	if ok {
		p.RestAtPrayerSite(site)
	} else {
		p.SetPosition(vmath.Vec3F{
			X: parameter.FallbackRespawnX,
			Y: parameter.FallbackRespawnY,
			Z: parameter.FallbackRespawnZ,
		})
		p.vitals.Restore()
	}

	p.log.Info("player defeated", zap.String("site", site.ID))
	event.Emit(p.events, event.EventPlayerDefeated, &event.PlayerDefeatedPayload{SiteID: site.ID})
}
