package player

import (
	"slices"

	"github.com/lixenwraith/nazarene/parameter"
)

// Stats is the derived tuning of the player after skill modifiers
type Stats struct {
	LightDamage    float64
	LightPosture   float64
	LightRange     float64
	HeavyDamage    float64
	HeavyPosture   float64
	HeavyRange     float64
	WalkSpeed      float64
	DodgeSpeed     float64
	DodgeStamina   float64
	StaminaRegen   float64
	HealAmount     float64
	RadianceDamage float64
	RadianceRadius float64
	HealthBonus    float64
	StaminaBonus   float64
}

// BaseStats is the unmodified tuning
func BaseStats() Stats {
	return Stats{
		LightDamage:    parameter.LightAttackDamage,
		LightPosture:   parameter.LightAttackPosture,
		LightRange:     parameter.LightAttackRange,
		HeavyDamage:    parameter.HeavyAttackDamage,
		HeavyPosture:   parameter.HeavyAttackPosture,
		HeavyRange:     parameter.HeavyAttackRange,
		WalkSpeed:      parameter.PlayerWalkSpeed,
		DodgeSpeed:     parameter.PlayerDodgeSpeed,
		DodgeStamina:   parameter.DodgeStamina,
		StaminaRegen:   parameter.PlayerStaminaRegen,
		HealAmount:     parameter.HealAmount,
		RadianceDamage: parameter.RadianceDamage,
		RadianceRadius: parameter.RadianceRadius,
	}
}

// StatsFor folds unlocked skill modifiers into the base tuning
// Unknown skill ids are ignored
func StatsFor(unlocked []string) Stats {
	s := BaseStats()
	has := func(id string) bool { return slices.Contains(unlocked, id) }

	if has(parameter.SkillSmite) {
		s.LightDamage *= parameter.SmiteDamageScale
		s.HeavyDamage *= parameter.SmiteDamageScale
	}
	if has(parameter.SkillCrusader) {
		s.HeavyPosture *= parameter.CrusaderPostureScale
		s.HeavyRange += parameter.CrusaderRangeBonus
	}
	if has(parameter.SkillPilgrimStride) {
		s.WalkSpeed *= parameter.PilgrimStrideScale
	}
	if has(parameter.SkillSwiftVow) {
		s.DodgeStamina *= parameter.SwiftVowDodgeScale
	}
	if has(parameter.SkillAbundance) {
		s.HealAmount *= parameter.AbundanceHealScale
	}
	if has(parameter.SkillRadianceLance) {
		s.RadianceDamage *= parameter.RadianceLanceScale
		s.RadianceRadius += parameter.RadianceLanceRadius
	}
	if has(parameter.SkillShepherdGuard) {
		s.HealthBonus += parameter.ShepherdGuardHealth
	}
	if has(parameter.SkillSteadfast) {
		s.StaminaBonus += parameter.SteadfastStamina
		s.StaminaRegen *= parameter.SteadfastRegenScale
	}
	return s
}

// ApplySkillModifiers recomputes stats and pool capacities from the unlocked skill set
// Current health and stamina are clamped into the new capacities, never raised
func (p *Player) ApplySkillModifiers(unlocked []string) {
	p.stats = StatsFor(unlocked)
	p.applyCapacities()
}

// SetCampaignBaseVitals sets the region-reward base capacities that skill bonuses stack on
func (p *Player) SetCampaignBaseVitals(maxHealth, maxStamina float64, restore bool) {
	p.baseMaxHealth = max(1, maxHealth)
	p.baseMaxStamina = max(1, maxStamina)
	p.applyCapacities()
	if restore {
		p.vitals.Restore()
	}
}

func (p *Player) applyCapacities() {
	p.vitals.Health.SetMax(p.baseMaxHealth + p.stats.HealthBonus)
	p.vitals.Stamina.SetMax(p.baseMaxStamina + p.stats.StaminaBonus)
}
