package player

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/nazarene/combat"
	"github.com/lixenwraith/nazarene/core"
	"github.com/lixenwraith/nazarene/event"
	"github.com/lixenwraith/nazarene/parameter"
)

// CastMiracle dispatches by miracle id; unknown ids are rejected
func (p *Player) CastMiracle(id string) bool {
	switch id {
	case parameter.MiracleHeal:
		return p.TryHeal()
	case parameter.MiracleBlessing:
		return p.TryBlessing()
	case parameter.MiracleRadiance:
		return p.TryRadiance()
	}
	return false
}

// TryHeal restores health; rejected on cooldown, at full health or short of faith
func (p *Player) TryHeal() bool {
	if p.healCooldown.Active() || p.vitals.Health.Full() {
		return false
	}
	if !p.vitals.SpendFaith(parameter.HealFaith) {
		return false
	}
	p.vitals.Health.Add(p.stats.HealAmount)
	p.healCooldown.Set(parameter.HealCooldown)
	p.attackCooldown.Extend(parameter.MiracleAttackLockout)
	p.miracleCast(parameter.MiracleHeal, core.EffectHealGlow, 0)
	return true
}

// TryBlessing grants the damage-reduction and regen buff; requires the unlock
func (p *Player) TryBlessing() bool {
	if !p.progression.IsMiracleUnlocked(parameter.MiracleBlessing) || p.blessingCooldown.Active() {
		return false
	}
	if !p.vitals.SpendFaith(parameter.BlessingFaith) {
		return false
	}
	p.blessing.Set(parameter.BlessingDuration)
	p.blessingCooldown.Set(parameter.BlessingCooldown)
	p.attackCooldown.Extend(parameter.MiracleAttackLockout)
	p.miracleCast(parameter.MiracleBlessing, core.EffectBlessingAura, 0)
	return true
}

// TryRadiance strikes and pushes every non-redeemed enemy within the radius; requires the unlock
func (p *Player) TryRadiance() bool {
	if !p.progression.IsMiracleUnlocked(parameter.MiracleRadiance) || p.radianceCooldown.Active() {
		return false
	}
	if !p.vitals.SpendFaith(parameter.RadianceFaith) {
		return false
	}
	hits := combat.ApplyArea(combat.AreaHit{
		Origin:    p.kin.Position,
		Radius:    p.stats.RadianceRadius,
		Damage:    p.stats.RadianceDamage,
		Posture:   parameter.RadiancePosture,
		Knockback: parameter.RadianceKnockback,
	}, p.roster.Enemies(), p)
	p.radianceCooldown.Set(parameter.RadianceCooldown)
	p.attackCooldown.Extend(parameter.RadianceAttackLockout)
	p.miracleCast(parameter.MiracleRadiance, core.EffectRadianceBurst, hits)
	return true
}

func (p *Player) miracleCast(id string, effect core.EffectType, hits int) {
	p.cue(core.SoundMiracle, effect, p.kin.Position)
	p.log.Debug("miracle cast", zap.String("miracle", id), zap.Int("hits", hits))
	event.Emit(p.events, event.EventMiracleCast, &event.MiracleCastPayload{Miracle: id, Hits: hits})
}
