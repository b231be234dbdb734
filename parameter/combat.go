package parameter

// Frontal Checks
const (
	// ShieldFrontalDotThreshold is the minimum dot(facing, toAttacker) for a shield to cover the hit
	ShieldFrontalDotThreshold = 0.3

	// ShieldBlockPoiseFactor is the share of posture damage a shield block still deals to poise
	ShieldBlockPoiseFactor = 0.35

	// LightAttackArcDegrees is the full frontal arc searched by light attacks
	LightAttackArcDegrees = 70.0

	// HeavyAttackArcDegrees is the full frontal arc searched by heavy attacks
	HeavyAttackArcDegrees = 80.0

	// MinTargetDistance rejects targets overlapping the attacker origin
	MinTargetDistance = 0.1
)

// Range Bonuses
const (
	// MeleeBonusRange is added to an enemy's attack range at strike time
	MeleeBonusRange = 80.0

	// MeleeBonusRangeSpear is the spear reach bonus
	MeleeBonusRangeSpear = 110.0

	// MeleeBonusRangeBossEnraged is the boss reach bonus from phase 2 onward
	MeleeBonusRangeBossEnraged = 120.0

	// LockTargetRangeSlack extends attack reach toward a locked target
	LockTargetRangeSlack = 70.0
)

// Boss Phase Scaling (applied per phase above 1)
const (
	// BossPhase3HealthRatio is the health ratio at or below which phase 3 begins
	BossPhase3HealthRatio = 0.33

	// BossPhase2HealthRatio is the health ratio at or below which phase 2 begins
	BossPhase2HealthRatio = 0.66

	BossDamageScalePerPhase   = 0.2
	BossPostureScalePerPhase  = 0.16
	BossSpeedScalePerPhase    = 0.12
	BossWindupScalePerPhase   = 0.08
	BossRecoveryScalePerPhase = 0.06
	BossParryShrinkPerPhase   = 0.05

	// DemonDamageScale is the flat demon damage multiplier
	DemonDamageScale = 1.08
)

// Parry Window Clamps (ratios of windup duration)
const (
	ParryStartMin   = 0.1
	ParryStartMax   = 0.84
	ParryMinWidth   = 0.06
	ParryEndMax     = 0.95
	StrikeTimingMin = 0.05
	StrikeTimingMax = 0.95
)
